package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/siherrmann/seatgraph"
	"github.com/siherrmann/seatgraph/helper"
	"github.com/siherrmann/seatgraph/model"
)

const guestList = `Richard Young (+2), Thomas Hall and Lauren Allen & Kid1 & Kid2, Maria Lopez, Alice Carter, Alice Carter, Ben Porter plus one`

func main() {
	// Start a test PostgreSQL container for the plan cache
	teardown, dbPort, err := helper.MustStartPostgresContainer()
	if err != nil {
		log.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	defer teardown(context.Background())

	dbConfig := &helper.DatabaseConfiguration{
		Host:     "localhost",
		Port:     dbPort,
		Database: "database",
		Username: "user",
		Password: "password",
		Schema:   "public",
		SSLMode:  "disable",
	}

	s, err := seatgraph.NewWithPlanCache(dbConfig)
	if err != nil {
		log.Fatalf("Failed to create seatgraph: %v", err)
	}
	defer s.Close()

	// Parse the raw guest list into guest units
	fmt.Println("Parsing guest list...")
	parsed := s.ParseGuestUnits(guestList)
	for _, w := range parsed.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, g := range parsed.Units {
		fmt.Printf("%-45s seats=%d sort=%s\n", g.DisplayName, g.Count, g.SortKey)
	}

	tables := []*model.Table{
		{ID: 1, Capacity: 6, Name: "Family"},
		{ID: 2, Capacity: 4, Name: "Friends"},
	}

	// Seat the first two units next to each other and forbid a third nearby
	snap := &model.Snapshot{
		Guests:      parsed.Units,
		Tables:      tables,
		Constraints: model.ConstraintMatrix{},
		Adjacents:   model.AdjacencyMap{},
	}
	snap.Adjacents.Add(parsed.Units[0].ID, parsed.Units[1].ID)
	snap.Constraints.Set(parsed.Units[0].ID, parsed.Units[2].ID, model.RelationCannot)

	fmt.Println("\nValidating snapshot...")
	conflicts := s.Validate(snap)
	for _, c := range conflicts {
		fmt.Printf("%-20s %s\n", c.Type, c.Description)
	}
	if len(conflicts) == 0 {
		fmt.Println("no conflicts")
	}

	// Fingerprint the snapshot and cache a (fake) generated plan under it
	sig := s.ComputePlanSignature(snap, "unassigned")
	fmt.Printf("\nPlan signature: %s\n", sig)

	payload, _ := json.Marshal(map[string]interface{}{
		"tables": map[string][]string{"Family": {parsed.Units[0].DisplayName}},
	})
	err = s.StorePlan(&model.Plan{
		Signature:  sig,
		Payload:    payload,
		GuestCount: len(parsed.Units),
		SeatCount:  parsed.TotalSeats(),
		Metadata:   model.Metadata{"generator": "example"},
	})
	if err != nil {
		log.Fatalf("Failed to store plan: %v", err)
	}

	cached, err := s.LookupPlan(sig)
	if err != nil {
		log.Fatalf("Failed to look up plan: %v", err)
	}
	fmt.Printf("Cached plan found: id=%d guests=%d seats=%d\n", cached.ID, cached.GuestCount, cached.SeatCount)
}
