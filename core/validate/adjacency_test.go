package validate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/siherrmann/seatgraph/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guest(name string, count int) *model.Guest {
	return &model.Guest{
		ID:          uuid.New(),
		DisplayName: name,
		Count:       count,
	}
}

func snapshot(guests []*model.Guest, tables []*model.Table) *model.Snapshot {
	return &model.Snapshot{
		Guests:      guests,
		Tables:      tables,
		Constraints: model.ConstraintMatrix{},
		Adjacents:   model.AdjacencyMap{},
		Assignments: model.Assignment{},
	}
}

func conflictTypes(conflicts []model.Conflict) []model.ConflictType {
	types := make([]model.ConflictType, 0, len(conflicts))
	for _, c := range conflicts {
		types = append(types, c.Type)
	}
	return types
}

func TestAdjacencyTopology(t *testing.T) {
	tables := []*model.Table{{ID: 1, Capacity: 10}}

	t.Run("Two-node chain is never circular", func(t *testing.T) {
		a, b := guest("A", 1), guest("B", 1)
		snap := snapshot([]*model.Guest{a, b}, tables)
		snap.Adjacents.Add(a.ID, b.ID)

		conflicts := Adjacency(snap)

		assert.Empty(t, conflicts)
	})

	t.Run("Three-node open path is valid", func(t *testing.T) {
		a, b, c := guest("A", 1), guest("B", 1), guest("C", 1)
		snap := snapshot([]*model.Guest{a, b, c}, tables)
		snap.Adjacents.Add(a.ID, b.ID)
		snap.Adjacents.Add(b.ID, c.ID)

		conflicts := Adjacency(snap)

		assert.Empty(t, conflicts)
	})

	t.Run("Three-node cycle is exactly one circular conflict", func(t *testing.T) {
		a, b, c := guest("A", 1), guest("B", 1), guest("C", 1)
		snap := snapshot([]*model.Guest{a, b, c}, tables)
		snap.Adjacents.Add(a.ID, b.ID)
		snap.Adjacents.Add(b.ID, c.ID)
		snap.Adjacents.Add(c.ID, a.ID)

		conflicts := Adjacency(snap)

		require.Len(t, conflicts, 1)
		assert.Equal(t, model.ConflictCircular, conflicts[0].Type)
		assert.Len(t, conflicts[0].AffectedGuests, 3)
	})

	t.Run("Four-node cycle is circular", func(t *testing.T) {
		a, b, c, d := guest("A", 1), guest("B", 1), guest("C", 1), guest("D", 1)
		snap := snapshot([]*model.Guest{a, b, c, d}, tables)
		snap.Adjacents.Add(a.ID, b.ID)
		snap.Adjacents.Add(b.ID, c.ID)
		snap.Adjacents.Add(c.ID, d.ID)
		snap.Adjacents.Add(d.ID, a.ID)

		conflicts := Adjacency(snap)

		require.Len(t, conflicts, 1)
		assert.Equal(t, model.ConflictCircular, conflicts[0].Type)
	})

	t.Run("Node with three partners is one adjacency violation", func(t *testing.T) {
		hub := guest("Hub", 1)
		a, b, c := guest("A", 1), guest("B", 1), guest("C", 1)
		snap := snapshot([]*model.Guest{hub, a, b, c}, tables)
		snap.Adjacents.Add(hub.ID, a.ID)
		snap.Adjacents.Add(hub.ID, b.ID)
		snap.Adjacents.Add(hub.ID, c.ID)

		conflicts := Adjacency(snap)

		require.Len(t, conflicts, 1)
		assert.Equal(t, model.ConflictAdjacency, conflicts[0].Type)
		assert.Len(t, conflicts[0].AffectedGuests, 4)
		assert.Equal(t, hub.ID, conflicts[0].AffectedGuests[0])
	})

	t.Run("Separate components are validated independently", func(t *testing.T) {
		a, b, c, d, e := guest("A", 1), guest("B", 1), guest("C", 1), guest("D", 1), guest("E", 1)
		snap := snapshot([]*model.Guest{a, b, c, d, e}, tables)
		// Open chain A-B and cycle C-D-E.
		snap.Adjacents.Add(a.ID, b.ID)
		snap.Adjacents.Add(c.ID, d.ID)
		snap.Adjacents.Add(d.ID, e.ID)
		snap.Adjacents.Add(e.ID, c.ID)

		conflicts := Adjacency(snap)

		require.Len(t, conflicts, 1)
		assert.Equal(t, model.ConflictCircular, conflicts[0].Type)
	})

	t.Run("Self-links and unknown guests are ignored", func(t *testing.T) {
		a, b := guest("A", 1), guest("B", 1)
		snap := snapshot([]*model.Guest{a, b}, tables)
		snap.Adjacents[a.ID] = []uuid.UUID{a.ID, b.ID, uuid.New()}

		conflicts := Adjacency(snap)

		assert.Empty(t, conflicts)
	})
}

func TestAdjacencyCapacity(t *testing.T) {
	t.Run("Chain fitting the largest table is feasible", func(t *testing.T) {
		a, b := guest("A", 5), guest("B", 6)
		tables := []*model.Table{{ID: 1, Capacity: 4}, {ID: 2, Capacity: 12}}
		snap := snapshot([]*model.Guest{a, b}, tables)
		snap.Adjacents.Add(a.ID, b.ID)

		conflicts := Adjacency(snap)

		assert.Empty(t, conflicts, "a chain of 11 fits the 12-seat table")
	})

	t.Run("Chain exceeding every table is a capacity violation", func(t *testing.T) {
		a, b := guest("A", 7), guest("B", 6)
		tables := []*model.Table{{ID: 1, Capacity: 4}, {ID: 2, Capacity: 12}}
		snap := snapshot([]*model.Guest{a, b}, tables)
		snap.Adjacents.Add(a.ID, b.ID)

		conflicts := Adjacency(snap)

		require.Len(t, conflicts, 1)
		assert.Equal(t, model.ConflictCapacity, conflicts[0].Type)
	})

	t.Run("Eligibility intersects member table restrictions", func(t *testing.T) {
		a, b := guest("A", 3), guest("B", 3)
		tables := []*model.Table{{ID: 1, Capacity: 4}, {ID: 2, Capacity: 12}}
		snap := snapshot([]*model.Guest{a, b}, tables)
		snap.Adjacents.Add(a.ID, b.ID)
		// Guest A may only sit at the small table, so the 12-seat table does
		// not count for the chain.
		snap.Assignments[a.ID] = []int{1}

		conflicts := Adjacency(snap)

		require.Len(t, conflicts, 1)
		assert.Equal(t, model.ConflictCapacity, conflicts[0].Type)
	})

	t.Run("Disjoint restrictions leave no eligible table", func(t *testing.T) {
		a, b := guest("A", 1), guest("B", 1)
		tables := []*model.Table{{ID: 1, Capacity: 4}, {ID: 2, Capacity: 4}}
		snap := snapshot([]*model.Guest{a, b}, tables)
		snap.Adjacents.Add(a.ID, b.ID)
		snap.Assignments[a.ID] = []int{1}
		snap.Assignments[b.ID] = []int{2}

		conflicts := Adjacency(snap)

		require.Len(t, conflicts, 1)
		assert.Equal(t, model.ConflictCapacity, conflicts[0].Type)
	})

	t.Run("No tables configured skips the capacity check", func(t *testing.T) {
		a, b := guest("A", 9), guest("B", 9)
		snap := snapshot([]*model.Guest{a, b}, nil)
		snap.Adjacents.Add(a.ID, b.ID)

		conflicts := Adjacency(snap)

		assert.Empty(t, conflicts)
	})
}

func TestAdjacencyContradiction(t *testing.T) {
	tables := []*model.Table{{ID: 1, Capacity: 10}}

	t.Run("Adjacent pair with explicit cannot is a contradiction", func(t *testing.T) {
		a, b := guest("A", 1), guest("B", 1)
		snap := snapshot([]*model.Guest{a, b}, tables)
		snap.Adjacents.Add(a.ID, b.ID)
		snap.Constraints.Set(a.ID, b.ID, model.RelationCannot)

		conflicts := Adjacency(snap)

		require.Len(t, conflicts, 1)
		assert.Equal(t, model.ConflictContradiction, conflicts[0].Type)
		assert.Len(t, conflicts[0].AffectedGuests, 2)
	})

	t.Run("Adjacency needs no explicit must entry", func(t *testing.T) {
		a, b := guest("A", 1), guest("B", 1)
		snap := snapshot([]*model.Guest{a, b}, tables)
		snap.Adjacents.Add(a.ID, b.ID)
		snap.Constraints.Set(a.ID, b.ID, model.RelationMust)

		conflicts := Adjacency(snap)

		assert.Empty(t, conflicts, "must plus adjacency is consistent")
	})

	t.Run("Conflicts keep snapshot order", func(t *testing.T) {
		a, b, c, d := guest("A", 1), guest("B", 1), guest("C", 1), guest("D", 1)
		snap := snapshot([]*model.Guest{a, b, c, d}, tables)
		snap.Adjacents.Add(a.ID, b.ID)
		snap.Adjacents.Add(c.ID, d.ID)
		snap.Constraints.Set(a.ID, b.ID, model.RelationCannot)
		snap.Constraints.Set(c.ID, d.ID, model.RelationCannot)

		first := Adjacency(snap)
		second := Adjacency(snap)

		assert.Equal(t, conflictTypes(first), conflictTypes(second))
		assert.Equal(t, first[0].AffectedGuests, second[0].AffectedGuests)
		assert.Equal(t, first[1].AffectedGuests, second[1].AffectedGuests)
	})
}
