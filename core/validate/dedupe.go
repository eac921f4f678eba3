package validate

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/siherrmann/seatgraph/model"
)

// Dedupe normalizes a conflict list: affected guests are sorted and
// deduplicated, conflicts whose affected set shrinks below two guests are
// dropped, and only the first conflict per (type, affected set) key survives.
// Applying Dedupe to its own output changes nothing.
func Dedupe(conflicts []model.Conflict) []model.Conflict {
	seen := map[string]bool{}
	out := make([]model.Conflict, 0, len(conflicts))

	for _, c := range conflicts {
		ids := sortedUnique(c.AffectedGuests)
		if len(ids) < 2 {
			continue
		}

		key := conflictKey(c.Type, ids)
		if seen[key] {
			continue
		}
		seen[key] = true

		c.AffectedGuests = ids
		out = append(out, c)
	}

	return out
}

func sortedUnique(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Compare(out[i].String(), out[j].String()) < 0
	})
	return out
}

func conflictKey(t model.ConflictType, ids []uuid.UUID) string {
	parts := make([]string, 0, len(ids)+1)
	parts = append(parts, string(t))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	return strings.Join(parts, "::")
}
