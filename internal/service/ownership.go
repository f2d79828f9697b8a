package service

import "github.com/hiresphere/api/internal/model"

// Ownership guard. Every mutation on a job or application passes through one
// of these checks with the authenticated company as the principal.
//
// Denial reasons are distinct sentinels so callers can tell a missing
// resource from a foreign one, but the handler layer maps both onto the same
// outward 404 response: a non-owner probing a valid id must learn nothing.

// authorizeJob checks that the job exists and is owned by companyID.
func authorizeJob(job *model.Job, companyID string) error {
	if job == nil {
		return ErrJobNotFound
	}
	if job.CompanyID != companyID {
		return ErrNotJobOwner
	}
	return nil
}

// authorizeApplication checks that the application exists and belongs to a
// job owned by companyID. The company id checked here is the denormalized
// copy taken at application creation time, never re-derived from the job.
func authorizeApplication(application *model.Application, companyID string) error {
	if application == nil {
		return ErrApplicationNotFound
	}
	if application.CompanyID != companyID {
		return ErrNotApplicationOwner
	}
	return nil
}
