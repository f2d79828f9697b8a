package model

import "time"

// Job represents a posted job. Every job is owned by exactly one company.
// After creation only the visibility flag is mutable, and only by the owner.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Salary      int64     `json:"salary"`
	CompanyID   string    `json:"company_id"`
	Visible     bool      `json:"visible"`
	CreatedOn   time.Time `json:"created_on"`
}

// JobWithCompany is a job joined with its owning company's public summary,
// used by the public job listings.
type JobWithCompany struct {
	Job
	Company *CompanySummary `json:"company,omitempty"`
}
