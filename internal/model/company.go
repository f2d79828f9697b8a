package model

import "time"

// Company represents a job-posting company account.
// Companies register and log in with email/password and own zero or more jobs.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"` // Never expose password hash
	Image     string    `json:"image"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// CompanySummary is the public projection of a company, safe to embed in
// job listings and application views.
type CompanySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

// Summary returns the public projection of the company.
func (c *Company) Summary() *CompanySummary {
	return &CompanySummary{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Image: c.Image,
	}
}
