package model

import "github.com/google/uuid"

// Relation represents the type of pairwise seating relationship between guests
type Relation string

const (
	RelationMust   Relation = "must"
	RelationCannot Relation = "cannot"
)

// ConstraintMatrix is a symmetric mapping of pairwise seating relations.
// Constraints[a][b] == Constraints[b][a] always; a guest never constrains
// itself; a missing entry means "no preference".
type ConstraintMatrix map[uuid.UUID]map[uuid.UUID]Relation

// Set stores a relation for both directions of the pair. Self-references are
// ignored silently.
func (c ConstraintMatrix) Set(a, b uuid.UUID, rel Relation) {
	if a == b {
		return
	}
	if c[a] == nil {
		c[a] = map[uuid.UUID]Relation{}
	}
	if c[b] == nil {
		c[b] = map[uuid.UUID]Relation{}
	}
	c[a][b] = rel
	c[b][a] = rel
}

// Get returns the relation between two guests and whether one is set.
// Self-references never have a relation.
func (c ConstraintMatrix) Get(a, b uuid.UUID) (Relation, bool) {
	if a == b {
		return "", false
	}
	rel, ok := c[a][b]
	return rel, ok
}

// Remove deletes the relation in both directions.
func (c ConstraintMatrix) Remove(a, b uuid.UUID) {
	delete(c[a], b)
	delete(c[b], a)
	if len(c[a]) == 0 {
		delete(c, a)
	}
	if len(c[b]) == 0 {
		delete(c, b)
	}
}

// AdjacencyMap models "must be seated in the immediately next seat"
// relationships. The map is symmetric: b is listed under a exactly when a is
// listed under b. A well-formed map keeps every guest's partner list at two
// entries or fewer, so adjacency forms chains rather than stars; validation
// reports nodes that exceed that bound.
type AdjacencyMap map[uuid.UUID][]uuid.UUID

// Add links two guests as adjacent in both directions. Self-links and
// duplicate partners are ignored.
func (m AdjacencyMap) Add(a, b uuid.UUID) {
	if a == b {
		return
	}
	m[a] = appendMissing(m[a], b)
	m[b] = appendMissing(m[b], a)
}

// Remove unlinks two guests in both directions.
func (m AdjacencyMap) Remove(a, b uuid.UUID) {
	m[a] = removeID(m[a], b)
	m[b] = removeID(m[b], a)
	if len(m[a]) == 0 {
		delete(m, a)
	}
	if len(m[b]) == 0 {
		delete(m, b)
	}
}

// Degree returns the number of adjacency partners of a guest.
func (m AdjacencyMap) Degree(id uuid.UUID) int {
	return len(m[id])
}

// Assignment maps a guest to the tables it may be seated at. A missing or
// empty entry means the guest may sit anywhere.
type Assignment map[uuid.UUID][]int

// AllowedTables returns the tables a guest is restricted to and whether a
// restriction exists.
func (a Assignment) AllowedTables(id uuid.UUID) ([]int, bool) {
	ids, ok := a[id]
	if !ok || len(ids) == 0 {
		return nil, false
	}
	return ids, true
}

func appendMissing(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
