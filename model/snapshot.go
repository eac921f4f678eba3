package model

import "github.com/google/uuid"

// Snapshot bundles the entities a validation or signature run operates on.
// The engine treats a snapshot as read-only for the duration of one call;
// callers own creation and mutation of the underlying state.
type Snapshot struct {
	Guests      []*Guest         `json:"guests"`
	Tables      []*Table         `json:"tables"`
	Constraints ConstraintMatrix `json:"constraints,omitempty"`
	Adjacents   AdjacencyMap     `json:"adjacents,omitempty"`
	Assignments Assignment       `json:"assignments,omitempty"`
}

// GuestByID returns the guest with the given id, or nil.
func (s *Snapshot) GuestByID(id uuid.UUID) *Guest {
	for _, g := range s.Guests {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// TableByID returns the table with the given id, or nil.
func (s *Snapshot) TableByID(id int) *Table {
	for _, t := range s.Tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// GuestIndex maps guest ids to their position in the guest list. Validators
// use it to report conflicts in a stable, input-defined order.
func (s *Snapshot) GuestIndex() map[uuid.UUID]int {
	idx := make(map[uuid.UUID]int, len(s.Guests))
	for i, g := range s.Guests {
		idx[g.ID] = i
	}
	return idx
}

// EligibleTables returns the tables every given guest may be seated at: the
// intersection of their allowed-table sets, where an unrestricted guest
// allows all tables. The result preserves the snapshot's table order.
func (s *Snapshot) EligibleTables(ids []uuid.UUID) []*Table {
	eligible := make([]*Table, 0, len(s.Tables))
	for _, t := range s.Tables {
		allowed := true
		for _, id := range ids {
			restricted, ok := s.Assignments.AllowedTables(id)
			if !ok {
				continue
			}
			found := false
			for _, tid := range restricted {
				if tid == t.ID {
					found = true
					break
				}
			}
			if !found {
				allowed = false
				break
			}
		}
		if allowed {
			eligible = append(eligible, t)
		}
	}
	return eligible
}
