package handler

import (
	"errors"

	"github.com/hiresphere/api/internal/model"
	"github.com/hiresphere/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidCredential),
		errors.Is(err, service.ErrUnknownPrincipal):
		return model.NewUnauthorizedError(err.Error())

	// ===== Ownership Errors → 404 =====
	// Deliberately the same response as a missing resource: a non-owner
	// probing a valid id must not learn that it exists.
	case errors.Is(err, service.ErrNotJobOwner):
		return model.NewNotFoundError("job")
	case errors.Is(err, service.ErrNotApplicationOwner):
		return model.NewNotFoundError("application")

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("job")
	case errors.Is(err, service.ErrApplicationNotFound):
		return model.NewNotFoundError("application")
	case errors.Is(err, service.ErrApplicantNotFound):
		return model.NewNotFoundError("applicant")
	case errors.Is(err, service.ErrCompanyNotFound):
		return model.NewNotFoundError("company")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrAlreadyApplied):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrImageRequired):
		return model.NewValidationError([]model.FieldError{{Field: "company", Message: err.Error()}})

	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrNegativeSalary):
		return model.NewValidationError([]model.FieldError{{Field: "job", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidStatus):
		return model.NewValidationError([]model.FieldError{{Field: "status", Message: err.Error()}})

	case errors.Is(err, service.ErrResumeRequired):
		return model.NewValidationError([]model.FieldError{{Field: "resume", Message: err.Error()}})

	// ===== Webhook Errors → 400 =====
	case errors.Is(err, service.ErrBadSignature):
		return model.NewBadSignatureError()
	case errors.Is(err, service.ErrMalformedEvent):
		return model.NewBadRequestError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
