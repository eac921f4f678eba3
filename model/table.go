package model

import "fmt"

// Table represents a physical table with a fixed number of seats.
type Table struct {
	ID       int    `json:"id"`
	Capacity int    `json:"capacity"`
	Name     string `json:"name,omitempty"`
}

// Label returns the table name if set, otherwise "table <id>".
func (t *Table) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("table %d", t.ID)
}
