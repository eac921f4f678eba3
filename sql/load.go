package sql

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
)

//go:embed plans.sql
var plansSQL string

// PlansFunctions lists the SQL functions the plans handler relies on.
var PlansFunctions = []string{
	"init_plans",
	"insert_plan",
	"select_plan_by_signature",
	"delete_plan_by_signature",
	"prune_plans",
}

// LoadPlansSql loads the plan-cache SQL functions. If force is false and all
// functions already exist, nothing is reloaded.
func LoadPlansSql(db *sql.DB, force bool) error {
	if !force {
		exist, err := checkFunctions(db, PlansFunctions)
		if err != nil {
			return fmt.Errorf("error checking existing plans functions: %w", err)
		}
		if exist {
			return nil
		}
	}

	_, err := db.Exec(plansSQL)
	if err != nil {
		return fmt.Errorf("error executing plans SQL: %w", err)
	}

	exist, err := checkFunctions(db, PlansFunctions)
	if err != nil {
		return fmt.Errorf("error checking existing functions: %w", err)
	}
	if !exist {
		return fmt.Errorf("not all required SQL functions were created")
	}

	log.Println("SQL plans functions loaded successfully")
	return nil
}

// checkFunctions verifies that all required functions exist in the database
func checkFunctions(db *sql.DB, sqlFunctions []string) (bool, error) {
	var allExist bool
	for _, f := range sqlFunctions {
		err := db.QueryRow(
			`SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);`,
			f,
		).Scan(&allExist)
		if err != nil {
			return false, fmt.Errorf("error checking existence of function %s: %w", f, err)
		}
		if !allExist {
			log.Printf("Function %s does not exist", f)
			break
		}
	}
	return allExist, nil
}
