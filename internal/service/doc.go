// Package service implements the business logic of the HireSphere API.
//
// Services sit between HTTP handlers and repositories. Each service is
// constructed with the repositories it needs and exposes context-aware
// methods that return domain models or sentinel errors from errors.go.
//
// # Services
//
//   - AuthService: company registration, login, and credential resolution
//   - JobService: job posting, visibility lifecycle, and public listings
//   - ApplicationService: application creation, deduplication, and status transitions
//   - ApplicantService: applicant profile reads and resume updates
//   - IdentitySyncService: idempotent consumption of identity provider webhooks
//
// # Authorization
//
// Mutations on jobs and applications pass through the ownership guard in
// ownership.go, which ties each resource to the company that owns it.
// Denials are sentinel errors (ErrNotJobOwner, ErrNotApplicationOwner) that
// the handler layer maps onto the same outward response as a missing
// resource, so probing requests cannot learn whether a resource exists.
//
// # Error Handling
//
// All errors returned by service methods are defined in errors.go and are
// checked with errors.Is by the handler error mapper.
package service
