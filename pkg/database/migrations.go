package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search over execution inputs and final
// outputs.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_workflow_executions_input_gin
		ON workflow_executions USING gin(to_tsvector('english', input))`)
	if err != nil {
		return fmt.Errorf("failed to create input GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_workflow_executions_final_output_gin
		ON workflow_executions USING gin(to_tsvector('english', COALESCE(final_output, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create final_output GIN index: %w", err)
	}

	return nil
}
