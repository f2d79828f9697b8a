// Package middleware provides net/http middleware for the API server.
//
// Middlewares compose through Chain, which applies them in order so that the
// first listed middleware is the outermost wrapper:
//
//	handler = middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//		middleware.CORS(origins),
//	)
//
// Authentication comes in two flavors. AuthCompany resolves a company bearer
// credential into a *model.Company and stores it in the request context.
// AuthApplicant only extracts and verifies the applicant subject id; the
// applicant directory is synced asynchronously, so the record behind the id
// may not exist yet when a request arrives.
package middleware
