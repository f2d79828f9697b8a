// Package repository provides data access for HireSphere domain entities.
//
// Each entity has its own repository type constructed over the
// database.Database interface:
//
//	companyRepo := repository.NewCompanyRepository(db)
//	company, err := companyRepo.GetByEmail(ctx, email)
//
// Repositories translate SurrealDB results into model types and map
// storage-level failures onto the database package's sentinel errors.
// A GetBy* method returns (nil, nil) when the record does not exist;
// callers decide whether absence is an error.
//
// Unique-index violations surface as database.ErrDuplicate so that services
// can map them onto business outcomes (duplicate email, duplicate
// application) instead of opaque query failures.
package repository
