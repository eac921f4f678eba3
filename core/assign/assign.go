package assign

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/siherrmann/seatgraph/model"
)

// TableResult contains the resolved table ids for one token list.
type TableResult struct {
	IDs      []int
	Warnings []model.Warning
}

// GuestResult contains the resolved guest ids for one token list.
type GuestResult struct {
	IDs      []uuid.UUID
	Warnings []model.Warning
}

// ResolveTables resolves free-text table references into canonical table ids.
// A token parsing as a positive integer is treated as a literal id and checked
// for existence; any other token is matched case-insensitively against table
// names. Unmatched tokens warn but never abort the resolution. The result is
// deduplicated and sorted ascending for determinism.
func ResolveTables(tokens []string, tables []*model.Table) TableResult {
	result := TableResult{}
	seen := map[int]bool{}

	for i, token := range tokens {
		row := i + 1
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			result.Warnings = append(result.Warnings, model.Warning{
				Row:     row,
				Message: "empty table reference skipped",
			})
			continue
		}

		id, ok := matchTable(trimmed, tables)
		if !ok {
			result.Warnings = append(result.Warnings, model.Warning{
				Row:     row,
				Token:   trimmed,
				Message: "unknown table reference",
			})
			continue
		}

		if !seen[id] {
			seen[id] = true
			result.IDs = append(result.IDs, id)
		}
	}

	sort.Ints(result.IDs)
	return result
}

// ResolveGuests resolves free-text guest references into canonical guest ids.
// A token parsing as a uuid is treated as a literal id and checked for
// existence; any other token is matched case-insensitively against display
// names and normalized keys. The result is deduplicated and returned in
// catalog insertion order.
func ResolveGuests(tokens []string, guests []*model.Guest) GuestResult {
	result := GuestResult{}
	seen := map[uuid.UUID]bool{}

	for i, token := range tokens {
		row := i + 1
		trimmed := strings.TrimSpace(token)
		if trimmed == "" {
			result.Warnings = append(result.Warnings, model.Warning{
				Row:     row,
				Message: "empty guest reference skipped",
			})
			continue
		}

		id, ok := matchGuest(trimmed, guests)
		if !ok {
			result.Warnings = append(result.Warnings, model.Warning{
				Row:     row,
				Token:   trimmed,
				Message: "unknown guest reference",
			})
			continue
		}

		seen[id] = true
	}

	// Catalog order keeps the output independent of token order.
	for _, g := range guests {
		if seen[g.ID] {
			result.IDs = append(result.IDs, g.ID)
		}
	}
	return result
}

func matchTable(token string, tables []*model.Table) (int, bool) {
	if id, err := strconv.Atoi(token); err == nil && id > 0 {
		for _, t := range tables {
			if t.ID == id {
				return id, true
			}
		}
		return 0, false
	}

	for _, t := range tables {
		if strings.EqualFold(t.Name, token) {
			return t.ID, true
		}
	}
	return 0, false
}

func matchGuest(token string, guests []*model.Guest) (uuid.UUID, bool) {
	if id, err := uuid.Parse(token); err == nil {
		for _, g := range guests {
			if g.ID == id {
				return id, true
			}
		}
		return uuid.Nil, false
	}

	for _, g := range guests {
		if strings.EqualFold(g.DisplayName, token) || strings.EqualFold(g.NormalizedKey, token) {
			return g.ID, true
		}
	}
	return uuid.Nil, false
}
