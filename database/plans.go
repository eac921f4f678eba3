package database

import (
	"context"
	dbsql "database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/siherrmann/seatgraph/helper"
	"github.com/siherrmann/seatgraph/model"
	"github.com/siherrmann/seatgraph/sql"
)

// PlansDBHandlerFunctions defines the interface for plan-cache database operations.
type PlansDBHandlerFunctions interface {
	InsertPlan(plan *model.Plan) error
	SelectPlanBySignature(signature string) (*model.Plan, error)
	DeletePlanBySignature(signature string) error
	PrunePlans(before time.Time) (int, error)
}

// PlansDBHandler handles cached seating plans keyed by snapshot signature
type PlansDBHandler struct {
	db *helper.Database
}

// NewPlansDBHandler creates a new plans database handler.
// It initializes the database connection and loads plan-related SQL functions.
// If force is true, it will reload the SQL functions even if they already exist.
func NewPlansDBHandler(db *helper.Database, force bool) (*PlansDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	plansDbHandler := &PlansDBHandler{
		db: db,
	}

	err := sql.LoadPlansSql(plansDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load plans sql", err)
	}

	err = plansDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized PlansDBHandler")

	return plansDbHandler, nil
}

// CreateTable creates the 'plans' table in the database.
// If the table already exists, it does not create it again.
// It also creates all necessary indexes.
func (h *PlansDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_plans();`)
	if err != nil {
		log.Panicf("error initializing plans table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table plans")

	return nil
}

// InsertPlan inserts a plan (or replaces the plan with the same signature)
func (h *PlansDBHandler) InsertPlan(plan *model.Plan) error {
	if plan.Metadata == nil {
		plan.Metadata = model.Metadata{}
	}

	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_plan($1, $2, $3, $4, $5)`,
		plan.Signature,
		string(plan.Payload),
		plan.GuestCount,
		plan.SeatCount,
		plan.Metadata,
	)

	err := row.Scan(
		&plan.ID,
		&plan.Signature,
		&plan.Payload,
		&plan.GuestCount,
		&plan.SeatCount,
		&plan.Metadata,
		&plan.CreatedAt,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectPlanBySignature retrieves the cached plan for a signature.
// A cache miss is not an error; it returns (nil, nil).
func (h *PlansDBHandler) SelectPlanBySignature(signature string) (*model.Plan, error) {
	plan := &model.Plan{}
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_plan_by_signature($1)`,
		signature,
	)

	err := row.Scan(
		&plan.ID,
		&plan.Signature,
		&plan.Payload,
		&plan.GuestCount,
		&plan.SeatCount,
		&plan.Metadata,
		&plan.CreatedAt,
	)
	if errors.Is(err, dbsql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return plan, nil
}

// DeletePlanBySignature deletes the cached plan for a signature
func (h *PlansDBHandler) DeletePlanBySignature(signature string) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_plan_by_signature($1)`,
		signature,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}
	return nil
}

// PrunePlans removes plans created before the given time and returns the
// number of removed rows.
func (h *PlansDBHandler) PrunePlans(before time.Time) (int, error) {
	var removed int
	err := h.db.Instance.QueryRow(
		`SELECT prune_plans($1)`,
		before,
	).Scan(&removed)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}
	return removed, nil
}
