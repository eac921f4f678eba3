package validate

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/siherrmann/seatgraph/model"
)

// Constraints checks the pairwise must/cannot matrix of a snapshot. A "must"
// pair conflicts when no single table could seat both guests: their allowed
// tables do not intersect, or no shared table fits the combined headcount.
// "cannot" pairs have no structural requirement. Self-referential entries and
// entries naming unknown guests are ignored silently. Pairs are visited in
// canonical order so (a,b) and (b,a) never report twice.
func Constraints(snap *model.Snapshot) []model.Conflict {
	var conflicts []model.Conflict

	for i, a := range snap.Guests {
		for _, b := range snap.Guests[i+1:] {
			rel, ok := pairRelation(snap.Constraints, a.ID, b.ID)
			if !ok || rel != model.RelationMust {
				continue
			}
			if len(snap.Tables) == 0 {
				continue
			}

			seats := a.Seats() + b.Seats()
			eligible := snap.EligibleTables([]uuid.UUID{a.ID, b.ID})
			if seats > maxCapacity(eligible) {
				conflicts = append(conflicts, model.Conflict{
					Type:           model.ConflictMustPair,
					AffectedGuests: []uuid.UUID{a.ID, b.ID},
					Description: fmt.Sprintf(
						"%s and %s must sit together but no table can seat both",
						a.DisplayName, b.DisplayName,
					),
				})
			}
		}
	}

	return conflicts
}
