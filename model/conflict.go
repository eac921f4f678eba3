package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ConflictType represents the kind of structural conflict found by validation
type ConflictType string

const (
	// ConflictCapacity is reported when a group cannot fit at any eligible table.
	ConflictCapacity ConflictType = "capacity_violation"
	// ConflictCircular is reported when an adjacency component closes into a cycle.
	ConflictCircular ConflictType = "circular"
	// ConflictAdjacency is reported when a guest has more than two adjacency partners.
	ConflictAdjacency ConflictType = "adjacency_violation"
	// ConflictContradiction is reported when adjacent guests also carry an
	// explicit "cannot" relation.
	ConflictContradiction ConflictType = "contradiction"
	// ConflictMustPair is reported when a "must" pair cannot share any table.
	ConflictMustPair ConflictType = "must_violation"
)

// Conflict describes one structural problem in a seating configuration.
// Every conflict affects at least two distinct guests.
type Conflict struct {
	Type           ConflictType `json:"type"`
	AffectedGuests []uuid.UUID  `json:"affected_guests"`
	Description    string       `json:"description"`
}

// Warning describes a recoverable anomaly found while parsing or resolving
// input. Warnings never abort processing.
type Warning struct {
	Row     int    `json:"row"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Token != "" {
		return fmt.Sprintf("row %d (%s): %s", w.Row, w.Token, w.Message)
	}
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}
