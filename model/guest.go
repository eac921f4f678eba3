package model

import (
	"time"

	"github.com/google/uuid"
)

// Guest represents one guest unit: a logical entry in the guest list that may
// cover several seated individuals (a couple, a family, a "+2").
type Guest struct {
	ID              uuid.UUID `json:"id"`
	DisplayName     string    `json:"display_name"`
	NormalizedKey   string    `json:"normalized_key"`
	SortKey         string    `json:"sort_key,omitempty"`
	Count           int       `json:"count"`
	IndividualNames []string  `json:"individual_names,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Seats returns the number of seats the unit occupies, never less than one.
func (g *Guest) Seats() int {
	if g.Count < 1 {
		return 1
	}
	return g.Count
}
