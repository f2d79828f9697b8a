package model

import "time"

// Applicant mirrors an identity record from the external identity provider.
// The ID equals the provider's subject id, not a locally generated key.
// Records are created, updated, and deleted only by the identity sync
// handler; the API layer reads them and may update the resume field.
type Applicant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image"`
	Resume    *string   `json:"resume,omitempty"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
