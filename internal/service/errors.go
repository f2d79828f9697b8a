package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredential  = errors.New("invalid or expired credential")
	ErrUnknownPrincipal   = errors.New("credential references an unknown principal")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// ===== Ownership Errors =====
// Distinguishable internally, but mapped to the same outward response as a
// missing resource so non-owners cannot probe for existence.
var (
	ErrNotJobOwner         = errors.New("job is not owned by this company")
	ErrNotApplicationOwner = errors.New("application is not owned by this company")
)

// ===== Resource Errors =====
var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicantNotFound   = errors.New("applicant not found")
	ErrCompanyNotFound     = errors.New("company not found")
)

// ===== Lifecycle Errors =====
var (
	// ErrAlreadyApplied is a benign business rejection, not a system fault.
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrInvalidStatus  = errors.New("invalid application status")
)

// ===== Validation Errors =====
var (
	ErrTitleRequired  = errors.New("job title is required")
	ErrNegativeSalary = errors.New("salary must be non-negative")
	ErrResumeRequired = errors.New("resume reference is required")
	ErrNameRequired   = errors.New("name is required")
	ErrImageRequired  = errors.New("image reference is required")
)

// ===== Identity Sync Errors =====
var (
	ErrBadSignature   = errors.New("webhook signature verification failed")
	ErrMalformedEvent = errors.New("malformed identity event")
)
