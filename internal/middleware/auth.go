package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/hiresphere/api/internal/model"
	"github.com/hiresphere/api/internal/service"
)

// CompanyResolver verifies a bearer credential and loads its company
type CompanyResolver interface {
	ResolveCompany(ctx context.Context, credential string) (*model.Company, error)
}

// ApplicantResolver verifies a bearer credential and returns the applicant
// subject id it carries
type ApplicantResolver interface {
	ResolveApplicant(credential string) (string, error)
}

// CompanyKey is the context key for the authenticated company
const CompanyKey contextKey = "company"

// ApplicantIDKey is the context key for the authenticated applicant id
const ApplicantIDKey contextKey = "applicantID"

// AuthCompany returns a middleware that requires a company credential.
// The resolved company is stored in the request context.
func AuthCompany(resolver CompanyResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, ok := bearerToken(r)
			if !ok {
				model.NewUnauthorizedError("missing or malformed authorization header").WriteJSON(w)
				return
			}

			company, err := resolver.ResolveCompany(r.Context(), credential)
			if err != nil {
				switch {
				case errors.Is(err, service.ErrUnknownPrincipal):
					model.NewUnauthorizedError("credential references an unknown company").WriteJSON(w)
				case errors.Is(err, service.ErrInvalidCredential):
					model.NewUnauthorizedError("invalid or expired credential").WriteJSON(w)
				default:
					model.NewInternalError("failed to resolve credential").WriteJSON(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), CompanyKey, company)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthApplicant returns a middleware that requires an applicant credential.
// Only the subject id goes into the context: the applicant record itself may
// not be synced yet and handlers decide whether they need it.
func AuthApplicant(resolver ApplicantResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, ok := bearerToken(r)
			if !ok {
				model.NewUnauthorizedError("missing or malformed authorization header").WriteJSON(w)
				return
			}

			applicantID, err := resolver.ResolveApplicant(credential)
			if err != nil {
				model.NewUnauthorizedError("invalid or expired credential").WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), ApplicantIDKey, applicantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCompany extracts the authenticated company from context
func GetCompany(ctx context.Context) *model.Company {
	if company, ok := ctx.Value(CompanyKey).(*model.Company); ok {
		return company
	}
	return nil
}

// GetApplicantID extracts the authenticated applicant id from context
func GetApplicantID(ctx context.Context) string {
	if id, ok := ctx.Value(ApplicantIDKey).(string); ok {
		return id
	}
	return ""
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
