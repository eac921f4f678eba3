package seatgraph

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/siherrmann/seatgraph/core/assign"
	"github.com/siherrmann/seatgraph/core/parser"
	"github.com/siherrmann/seatgraph/core/signature"
	"github.com/siherrmann/seatgraph/core/validate"
	"github.com/siherrmann/seatgraph/database"
	"github.com/siherrmann/seatgraph/helper"
	"github.com/siherrmann/seatgraph/model"
)

// Seatgraph provides a unified interface to the guest-unit parser, the
// constraint validators and the optional plan cache
type Seatgraph struct {
	DB     *helper.Database
	Plans  *database.PlansDBHandler
	Config model.ParserConfig
	// Logging
	log *slog.Logger
}

// New creates a Seatgraph engine without a plan cache. All validation and
// parsing runs in memory; plan lookups return a cache miss.
func New() *Seatgraph {
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	return &Seatgraph{
		Config: model.DefaultParserConfig(),
		log:    logger,
	}
}

// NewWithPlanCache creates a Seatgraph engine backed by a Postgres plan
// cache, so an external plan generator can reuse plans across runs.
func NewWithPlanCache(config *helper.DatabaseConfiguration) (*Seatgraph, error) {
	s := New()

	db := helper.NewDatabase("seatgraph", config, s.log)

	plans, err := database.NewPlansDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create plans handler", err)
	}

	s.DB = db
	s.Plans = plans
	return s, nil
}

// Close closes the database connection
func (s *Seatgraph) Close() error {
	if s.DB != nil && s.DB.Instance != nil {
		return s.DB.Instance.Close()
	}
	return nil
}

// ParseGuestUnits turns raw comma-separated guest text into guest units.
// Malformed input degrades into warnings, it never fails.
func (s *Seatgraph) ParseGuestUnits(raw string) parser.Result {
	result := parser.Parse(raw, s.Config)
	if len(result.Warnings) > 0 {
		s.log.Warn("guest input produced warnings",
			slog.Int("units", len(result.Units)),
			slog.Int("warnings", len(result.Warnings)),
		)
	}
	return result
}

// NormalizeTableIds resolves free-text table references into canonical,
// deduplicated table ids in ascending order.
func (s *Seatgraph) NormalizeTableIds(tokens []string, tables []*model.Table) assign.TableResult {
	return assign.ResolveTables(tokens, tables)
}

// NormalizeGuestIds resolves free-text guest references into canonical,
// deduplicated guest ids in catalog order.
func (s *Seatgraph) NormalizeGuestIds(tokens []string, guests []*model.Guest) assign.GuestResult {
	return assign.ResolveGuests(tokens, guests)
}

// RemapLegacy migrates name-keyed constraint and adjacency maps into
// id-keyed ones, restoring symmetry and the adjacency degree bound.
func (s *Seatgraph) RemapLegacy(constraints map[string]map[string]model.Relation, adjacents map[string][]string, guests []*model.Guest) assign.RemapResult {
	return assign.RemapLegacy(constraints, adjacents, guests)
}

// ValidateAdjacency reports structural conflicts in the adjacency graph:
// degree violations, circular chains, chains too large for every eligible
// table and adjacency/cannot contradictions.
func (s *Seatgraph) ValidateAdjacency(snap *model.Snapshot) []model.Conflict {
	return validate.Adjacency(snap)
}

// ValidateConstraints reports "must" pairs that no table could seat together.
func (s *Seatgraph) ValidateConstraints(snap *model.Snapshot) []model.Conflict {
	return validate.Constraints(snap)
}

// DedupeConflicts normalizes and deduplicates a conflict list.
func (s *Seatgraph) DedupeConflicts(conflicts []model.Conflict) []model.Conflict {
	return validate.Dedupe(conflicts)
}

// Validate runs both validators over a snapshot and returns the deduplicated
// conflict list.
func (s *Seatgraph) Validate(snap *model.Snapshot) []model.Conflict {
	conflicts := validate.Adjacency(snap)
	conflicts = append(conflicts, validate.Constraints(snap)...)
	conflicts = validate.Dedupe(conflicts)

	if len(conflicts) > 0 {
		s.log.Warn("snapshot has structural conflicts",
			slog.Int("guests", len(snap.Guests)),
			slog.Int("tables", len(snap.Tables)),
			slog.Int("conflicts", len(conflicts)),
		)
	}
	return conflicts
}

// ComputePlanSignature fingerprints everything in a snapshot that affects
// seating feasibility, combined with a caller-supplied assignment signature.
func (s *Seatgraph) ComputePlanSignature(snap *model.Snapshot, assignmentSig string) string {
	return signature.Compute(snap, assignmentSig)
}

// LookupPlan returns the cached plan for a snapshot signature, or nil when
// the cache is disabled or has no matching plan.
func (s *Seatgraph) LookupPlan(sig string) (*model.Plan, error) {
	if s.Plans == nil {
		return nil, nil
	}
	return s.Plans.SelectPlanBySignature(sig)
}

// StorePlan caches a generated plan under its snapshot signature.
func (s *Seatgraph) StorePlan(plan *model.Plan) error {
	if s.Plans == nil {
		return nil
	}
	return s.Plans.InsertPlan(plan)
}

// NewGuestID returns a fresh process-unique guest id.
func NewGuestID() uuid.UUID {
	return uuid.New()
}
