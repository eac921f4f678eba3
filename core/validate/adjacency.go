package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/siherrmann/seatgraph/model"
)

// Adjacency checks the "must be seated next to" graph of a snapshot for
// structural conflicts:
//
//   - a guest with more than two adjacency partners (a seat only has two
//     neighbours),
//   - a connected component that closes into a cycle instead of forming an
//     open chain,
//   - a chain whose combined headcount does not fit at any table the whole
//     chain is eligible for,
//   - adjacent guests that also carry an explicit "cannot" relation, which
//     contradicts the implicit "must" of adjacency.
//
// The snapshot is treated as read-only; conflicts are reported in the order
// guests appear in the snapshot.
func Adjacency(snap *model.Snapshot) []model.Conflict {
	idx := snap.GuestIndex()
	neighbors := symmetrize(snap.Adjacents, idx)

	nodes := make([]uuid.UUID, 0, len(neighbors))
	for _, g := range snap.Guests {
		if len(neighbors[g.ID]) > 0 {
			nodes = append(nodes, g.ID)
		}
	}

	var conflicts []model.Conflict

	// Degree bound.
	for _, id := range nodes {
		partners := neighbors[id]
		if len(partners) <= 2 {
			continue
		}
		affected := append([]uuid.UUID{id}, partners...)
		conflicts = append(conflicts, model.Conflict{
			Type:           model.ConflictAdjacency,
			AffectedGuests: affected,
			Description: fmt.Sprintf(
				"%s is marked adjacent to %d guests, but a seat only has two neighbours",
				displayName(snap, id), len(partners),
			),
		})
	}

	// Component topology and capacity.
	visited := map[uuid.UUID]bool{}
	for _, start := range nodes {
		if visited[start] {
			continue
		}
		comp := component(start, neighbors, visited)
		sortByIndex(comp, idx)

		if len(comp) >= 3 {
			ends := 0
			for _, id := range comp {
				if len(neighbors[id]) == 1 {
					ends++
				}
			}
			if ends == 0 {
				conflicts = append(conflicts, model.Conflict{
					Type:           model.ConflictCircular,
					AffectedGuests: comp,
					Description: fmt.Sprintf(
						"adjacency chain of %s closes into a circle and cannot be seated in a row",
						listNames(snap, comp),
					),
				})
			}
		}

		if len(snap.Tables) > 0 {
			seats := 0
			for _, id := range comp {
				seats += snap.GuestByID(id).Seats()
			}
			if maxCap := maxCapacity(snap.EligibleTables(comp)); seats > maxCap {
				conflicts = append(conflicts, model.Conflict{
					Type:           model.ConflictCapacity,
					AffectedGuests: comp,
					Description: fmt.Sprintf(
						"adjacency chain of %s needs %d seats but no eligible table is large enough",
						listNames(snap, comp), seats,
					),
				})
			}
		}
	}

	// Adjacency implies "must"; an explicit "cannot" on the same pair is a
	// direct contradiction.
	for _, a := range nodes {
		for _, b := range neighbors[a] {
			if idx[a] > idx[b] {
				continue
			}
			if rel, ok := pairRelation(snap.Constraints, a, b); ok && rel == model.RelationCannot {
				conflicts = append(conflicts, model.Conflict{
					Type:           model.ConflictContradiction,
					AffectedGuests: []uuid.UUID{a, b},
					Description: fmt.Sprintf(
						"%s and %s must sit next to each other but also must not sit together",
						displayName(snap, a), displayName(snap, b),
					),
				})
			}
		}
	}

	return conflicts
}

// symmetrize builds a clean neighbor map from a possibly lopsided adjacency
// map: unknown guests and self-links are dropped, every surviving edge is
// listed in both directions, and partner lists follow snapshot order.
func symmetrize(adjacents model.AdjacencyMap, idx map[uuid.UUID]int) map[uuid.UUID][]uuid.UUID {
	neighbors := map[uuid.UUID]map[uuid.UUID]bool{}
	link := func(a, b uuid.UUID) {
		if neighbors[a] == nil {
			neighbors[a] = map[uuid.UUID]bool{}
		}
		neighbors[a][b] = true
	}

	for a, partners := range adjacents {
		if _, ok := idx[a]; !ok {
			continue
		}
		for _, b := range partners {
			if _, ok := idx[b]; !ok || a == b {
				continue
			}
			link(a, b)
			link(b, a)
		}
	}

	out := make(map[uuid.UUID][]uuid.UUID, len(neighbors))
	for id, set := range neighbors {
		partners := make([]uuid.UUID, 0, len(set))
		for p := range set {
			partners = append(partners, p)
		}
		sortByIndex(partners, idx)
		out[id] = partners
	}
	return out
}

// component collects all guests reachable from start via adjacency edges.
func component(start uuid.UUID, neighbors map[uuid.UUID][]uuid.UUID, visited map[uuid.UUID]bool) []uuid.UUID {
	queue := []uuid.UUID{start}
	visited[start] = true
	var comp []uuid.UUID

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		comp = append(comp, current)

		for _, next := range neighbors[current] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return comp
}

// maxCapacity returns the largest capacity among the given tables. A chain is
// feasible when it fits at least one eligible table.
func maxCapacity(tables []*model.Table) int {
	capacity := 0
	for _, t := range tables {
		if t.Capacity > capacity {
			capacity = t.Capacity
		}
	}
	return capacity
}

// pairRelation looks up a relation in either direction, tolerating matrices
// whose symmetry was broken by the caller.
func pairRelation(constraints model.ConstraintMatrix, a, b uuid.UUID) (model.Relation, bool) {
	if rel, ok := constraints.Get(a, b); ok {
		return rel, true
	}
	return constraints.Get(b, a)
}

func sortByIndex(ids []uuid.UUID, idx map[uuid.UUID]int) {
	sort.Slice(ids, func(i, j int) bool { return idx[ids[i]] < idx[ids[j]] })
}

func displayName(snap *model.Snapshot, id uuid.UUID) string {
	if g := snap.GuestByID(id); g != nil {
		return g.DisplayName
	}
	return id.String()
}

func listNames(snap *model.Snapshot, ids []uuid.UUID) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, displayName(snap, id))
	}
	return strings.Join(names, ", ")
}
