package model

import "time"

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// IsValid reports whether s is one of the known statuses.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application records one applicant applying to one job. At most one
// application exists per (job, applicant) pair. CompanyID is copied from the
// job's owner at creation time and never re-derived afterwards.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	ApplicantID string            `json:"applicant_id"`
	CompanyID   string            `json:"company_id"`
	Status      ApplicationStatus `json:"status"`
	CreatedOn   time.Time         `json:"created_on"`
}

// ApplicationDetail is an application joined with summaries of the records it
// references. Applicant may be nil: deleting an identity does not cascade to
// historical applications.
type ApplicationDetail struct {
	Application
	Job       *Job            `json:"job,omitempty"`
	Applicant *Applicant      `json:"applicant,omitempty"`
	Company   *CompanySummary `json:"company,omitempty"`
}
