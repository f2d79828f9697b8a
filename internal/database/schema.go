package database

import (
	"context"
	"fmt"
)

// schemaStatements defines the tables and indexes the service depends on.
// The unique index on application (job_id, applicant_id) is the authoritative
// duplicate-application guard: the service-level pre-check only exists to
// return a friendlier message, and a racing write that slips past it is
// rejected here.
var schemaStatements = []string{
	`DEFINE TABLE IF NOT EXISTS company SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS company_email ON TABLE company COLUMNS email UNIQUE`,

	`DEFINE TABLE IF NOT EXISTS applicant SCHEMALESS`,

	`DEFINE TABLE IF NOT EXISTS job SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS job_company ON TABLE job COLUMNS company_id`,
	`DEFINE INDEX IF NOT EXISTS job_visible ON TABLE job COLUMNS visible`,

	`DEFINE TABLE IF NOT EXISTS application SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS application_pair ON TABLE application COLUMNS job_id, applicant_id UNIQUE`,
	`DEFINE INDEX IF NOT EXISTS application_company ON TABLE application COLUMNS company_id`,
	`DEFINE INDEX IF NOT EXISTS application_applicant ON TABLE application COLUMNS applicant_id`,
}

// ApplySchema creates tables and indexes. Statements are idempotent, so this
// runs on every startup.
func ApplySchema(ctx context.Context, db Database) error {
	for _, stmt := range schemaStatements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("apply schema %q: %w", stmt, err)
		}
	}
	return nil
}
