package assign

import (
	"github.com/siherrmann/seatgraph/model"
)

// RemapResult contains a migrated constraint matrix and adjacency map
// together with the warnings for references that could not be resolved.
type RemapResult struct {
	Constraints model.ConstraintMatrix
	Adjacents   model.AdjacencyMap
	Warnings    []model.Warning
}

// RemapLegacy migrates constraint and adjacency maps that were keyed by
// display name into canonical id keying. Symmetry is restored on insert, and
// every guest's adjacency partner list is truncated to its first two valid
// resolved partners so the degree bound survives the migration.
func RemapLegacy(byNameConstraints map[string]map[string]model.Relation, byNameAdjacents map[string][]string, guests []*model.Guest) RemapResult {
	result := RemapResult{
		Constraints: model.ConstraintMatrix{},
		Adjacents:   model.AdjacencyMap{},
	}

	row := 0
	for name, partners := range byNameConstraints {
		row++
		a, ok := matchGuest(name, guests)
		if !ok {
			result.Warnings = append(result.Warnings, model.Warning{
				Row:     row,
				Token:   name,
				Message: "unknown guest in legacy constraints",
			})
			continue
		}
		for partner, rel := range partners {
			b, ok := matchGuest(partner, guests)
			if !ok {
				result.Warnings = append(result.Warnings, model.Warning{
					Row:     row,
					Token:   partner,
					Message: "unknown guest in legacy constraints",
				})
				continue
			}
			// Set ignores self-references and writes both directions.
			result.Constraints.Set(a, b, rel)
		}
	}

	row = 0
	for name, partners := range byNameAdjacents {
		row++
		a, ok := matchGuest(name, guests)
		if !ok {
			result.Warnings = append(result.Warnings, model.Warning{
				Row:     row,
				Token:   name,
				Message: "unknown guest in legacy adjacents",
			})
			continue
		}
		kept := 0
		for _, partner := range partners {
			if kept >= 2 {
				break
			}
			b, ok := matchGuest(partner, guests)
			if !ok {
				result.Warnings = append(result.Warnings, model.Warning{
					Row:     row,
					Token:   partner,
					Message: "unknown guest in legacy adjacents",
				})
				continue
			}
			if a == b {
				continue
			}
			result.Adjacents.Add(a, b)
			kept++
		}
	}

	return result
}
