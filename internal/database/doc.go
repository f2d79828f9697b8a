// Package database provides the database abstraction layer for HireSphere.
//
// This package defines the Database interface that abstracts SurrealDB
// operations, allowing for clean separation between business logic and data
// access.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns multiple results (for SELECT queries returning lists)
//   - QueryOne: Returns a single result (for SELECT by ID)
//   - Execute: No return value (for CREATE/UPDATE/DELETE mutations)
//
// Every write in this service touches a single record, so no transaction
// support is exposed. Cross-record invariants (one application per job and
// applicant, unique company email) are enforced by unique indexes defined in
// ApplySchema, not by multi-statement transactions.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	db := database.NewSurrealDB(cfg)
//	db.Connect(ctx)
//	defer db.Close()
//
//	result, err := db.QueryOne(ctx, "SELECT * FROM company WHERE email = $email", map[string]interface{}{"email": email})
package database
