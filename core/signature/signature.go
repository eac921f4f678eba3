package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/siherrmann/seatgraph/model"
)

// Compute produces a stable fingerprint of everything that affects seating
// feasibility: table capacities, guest headcounts, the constraint matrix, the
// adjacency map and a caller-supplied assignment signature. The fingerprint
// is independent of array ordering and map insertion order, so an external
// plan generator can compare signatures to decide whether a cached plan is
// still valid.
func Compute(snap *model.Snapshot, assignmentSig string) string {
	var b strings.Builder

	tables := make([]string, 0, len(snap.Tables))
	for _, t := range snap.Tables {
		tables = append(tables, fmt.Sprintf("t%d=%d", t.ID, t.Capacity))
	}
	sort.Strings(tables)
	b.WriteString(strings.Join(tables, ";"))
	b.WriteString("|")

	guests := make([]string, 0, len(snap.Guests))
	for _, g := range snap.Guests {
		guests = append(guests, fmt.Sprintf("g%s=%d", g.ID, g.Seats()))
	}
	sort.Strings(guests)
	b.WriteString(strings.Join(guests, ";"))
	b.WriteString("|")

	b.WriteString(strings.Join(constraintEntries(snap.Constraints), ";"))
	b.WriteString("|")

	b.WriteString(strings.Join(adjacencyEntries(snap.Adjacents), ";"))
	b.WriteString("|asg:")
	b.WriteString(assignmentSig)

	sum := sha256.Sum256([]byte(b.String()))
	return "v1:" + hex.EncodeToString(sum[:])
}

// constraintEntries flattens the matrix into canonical "a|b=rel" entries,
// deduplicating the two symmetric directions of each pair.
func constraintEntries(constraints model.ConstraintMatrix) []string {
	set := map[string]bool{}
	for a, partners := range constraints {
		for b, rel := range partners {
			if a == b {
				continue
			}
			lo, hi := orderPair(a, b)
			set[fmt.Sprintf("c%s|%s=%s", lo, hi, rel)] = true
		}
	}
	return sortedKeys(set)
}

// adjacencyEntries flattens the map into canonical "a|b" edges.
func adjacencyEntries(adjacents model.AdjacencyMap) []string {
	set := map[string]bool{}
	for a, partners := range adjacents {
		for _, b := range partners {
			if a == b {
				continue
			}
			lo, hi := orderPair(a, b)
			set[fmt.Sprintf("a%s|%s", lo, hi)] = true
		}
	}
	return sortedKeys(set)
}

func orderPair(a, b uuid.UUID) (string, string) {
	as, bs := a.String(), b.String()
	if as < bs {
		return as, bs
	}
	return bs, as
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
