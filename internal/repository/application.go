package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/model"
)

// ApplicationRepository handles job application data access
type ApplicationRepository struct {
	db database.Database
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db database.Database) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create persists a new application. The unique index on
// (job_id, applicant_id) is the authoritative duplicate guard: a concurrent
// duplicate that passes the service pre-check fails here with
// database.ErrDuplicate.
func (r *ApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	query := `
		CREATE application CONTENT {
			job_id: $job_id,
			applicant_id: $applicant_id,
			company_id: $company_id,
			status: $status,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"job_id":       application.JobID,
		"applicant_id": application.ApplicantID,
		"company_id":   application.CompanyID,
		"status":       string(application.Status),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: application already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := unwrapOne(result)
	if err != nil {
		return err
	}

	application.ID = convertSurrealID(created["id"])
	application.CreatedOn = parseTime(created["created_on"])
	return nil
}

// GetByID retrieves an application by ID. Returns (nil, nil) if absent.
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*model.Application, error) {
	query := `SELECT * FROM type::record($id)`
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
	return parseApplicationData(data)
}

// GetByJobAndApplicant retrieves the application for a (job, applicant)
// pair. Returns (nil, nil) if absent.
func (r *ApplicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*model.Application, error) {
	query := `SELECT * FROM application WHERE job_id = $job_id AND applicant_id = $applicant_id LIMIT 1`
	vars := map[string]interface{}{
		"job_id":       jobID,
		"applicant_id": applicantID,
	}

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
	return parseApplicationData(data)
}

// ListByCompany returns all applications for jobs owned by a company
func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID string) ([]*model.Application, error) {
	query := `SELECT * FROM application WHERE company_id = $company_id ORDER BY created_on DESC`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	return parseApplicationList(result)
}

// ListByApplicant returns all applications submitted by an applicant
func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*model.Application, error) {
	query := `SELECT * FROM application WHERE applicant_id = $applicant_id ORDER BY created_on DESC`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"applicant_id": applicantID})
	if err != nil {
		return nil, err
	}
	return parseApplicationList(result)
}

// UpdateStatus persists a new application status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	query := `UPDATE type::record($id) SET status = $status`
	vars := map[string]interface{}{
		"id":     id,
		"status": string(status),
	}

	return r.db.Execute(ctx, query, vars)
}

func parseApplicationList(result []interface{}) ([]*model.Application, error) {
	records := unwrapMany(result)
	applications := make([]*model.Application, 0, len(records))
	for _, raw := range records {
		data, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		application, err := parseApplicationData(data)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, nil
}

func parseApplicationData(data map[string]interface{}) (*model.Application, error) {
	var application model.Application
	if err := decodeRecord(data, &application); err != nil {
		return nil, err
	}
	return &application, nil
}
