package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/model"
)

// ApplicantRepository handles applicant identity data access.
// Applicant records are keyed by the external identity provider's subject id.
type ApplicantRepository struct {
	db database.Database
}

// NewApplicantRepository creates a new applicant repository
func NewApplicantRepository(db database.Database) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

// Create inserts a new applicant record under the provider subject id.
// Returns database.ErrDuplicate if the record already exists.
func (r *ApplicantRepository) Create(ctx context.Context, applicant *model.Applicant) error {
	query := `
		CREATE type::thing('applicant', $id) CONTENT {
			name: $name,
			email: $email,
			image: $image,
			resume: $resume,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"id":     applicant.ID,
		"name":   applicant.Name,
		"email":  applicant.Email,
		"image":  applicant.Image,
		"resume": applicant.Resume,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: applicant already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// Upsert writes the mutable identity fields, creating the record if it does
// not exist. Existing fields not named here (resume, created_on) are kept.
func (r *ApplicantRepository) Upsert(ctx context.Context, applicant *model.Applicant) error {
	query := `
		UPSERT type::thing('applicant', $id) SET
			name = $name,
			email = $email,
			image = $image,
			created_on = created_on ?? time::now(),
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"id":    applicant.ID,
		"name":  applicant.Name,
		"email": applicant.Email,
		"image": applicant.Image,
	}

	return r.db.Execute(ctx, query, vars)
}

// GetByID retrieves an applicant by provider subject id. Returns (nil, nil) if absent.
func (r *ApplicantRepository) GetByID(ctx context.Context, id string) (*model.Applicant, error) {
	query := `SELECT * FROM type::thing('applicant', $id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := unwrapOne(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseApplicantData(data)
}

// GetByIDs retrieves applicants for a set of subject ids, keyed by id.
func (r *ApplicantRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Applicant, error) {
	applicants := make(map[string]*model.Applicant, len(ids))
	if len(ids) == 0 {
		return applicants, nil
	}

	query := `SELECT * FROM applicant WHERE record::id(id) IN $ids`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}

	for _, raw := range unwrapMany(result) {
		data, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		applicant, err := parseApplicantData(data)
		if err != nil {
			return nil, err
		}
		applicants[applicant.ID] = applicant
	}
	return applicants, nil
}

// UpdateResume sets the resume reference on an applicant
func (r *ApplicantRepository) UpdateResume(ctx context.Context, id, resume string) error {
	query := `UPDATE type::thing('applicant', $id) SET resume = $resume, updated_on = time::now()`
	vars := map[string]interface{}{
		"id":     id,
		"resume": resume,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes an applicant record. Deleting an absent record is a no-op.
func (r *ApplicantRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::thing('applicant', $id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

func parseApplicantData(data map[string]interface{}) (*model.Applicant, error) {
	var applicant model.Applicant
	if err := decodeRecord(data, &applicant); err != nil {
		return nil, err
	}
	// Record keys are provider subject ids; drop the table prefix.
	applicant.ID = stripTable(applicant.ID, "applicant")
	return &applicant, nil
}
