// Package handler provides HTTP request handlers for the HireSphere API.
//
// Each handler struct encapsulates the services needed for one feature area:
// company account and recruiter endpoints, the public job board, applicant
// endpoints, and the identity webhook receiver.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) accepts the services it needs
//   - Request bodies decode into typed structs with ozzo-validation schemas
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to RFC 9457 Problem Details via MapServiceError
//
// # Authentication
//
// Recruiter endpoints run behind middleware.AuthCompany and read the company
// principal with middleware.GetCompany. Applicant endpoints run behind
// middleware.AuthApplicant and read the subject id with
// middleware.GetApplicantID. The webhook endpoint authenticates deliveries by
// signature instead of bearer credentials.
package handler
