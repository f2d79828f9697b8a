package repository

import (
	"context"
	"errors"

	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/model"
)

// JobRepository handles job posting data access
type JobRepository struct {
	db database.Database
}

// NewJobRepository creates a new job repository
func NewJobRepository(db database.Database) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job posting
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `
		CREATE job CONTENT {
			title: $title,
			description: $description,
			location: $location,
			category: $category,
			level: $level,
			salary: $salary,
			company_id: $company_id,
			visible: $visible,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"title":       job.Title,
		"description": job.Description,
		"location":    job.Location,
		"category":    job.Category,
		"level":       job.Level,
		"salary":      job.Salary,
		"company_id":  job.CompanyID,
		"visible":     job.Visible,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := unwrapOne(result)
	if err != nil {
		return err
	}

	job.ID = convertSurrealID(created["id"])
	job.CreatedOn = parseTime(created["created_on"])
	return nil
}

// GetByID retrieves a job by ID. Returns (nil, nil) if absent.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
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
	return parseJobData(data)
}

// GetByIDs retrieves jobs for a set of ids, keyed by id.
func (r *JobRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Job, error) {
	jobs := make(map[string]*model.Job, len(ids))
	if len(ids) == 0 {
		return jobs, nil
	}

	query := `SELECT * FROM job WHERE <string>id IN $ids`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"ids": ids})
	if err != nil {
		return nil, err
	}

	for _, raw := range unwrapMany(result) {
		data, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		job, err := parseJobData(data)
		if err != nil {
			return nil, err
		}
		jobs[job.ID] = job
	}
	return jobs, nil
}

// ListByCompany returns all jobs owned by a company, newest first
func (r *JobRepository) ListByCompany(ctx context.Context, companyID string) ([]*model.Job, error) {
	query := `SELECT * FROM job WHERE company_id = $company_id ORDER BY created_on DESC`
	result, err := r.db.Query(ctx, query, map[string]interface{}{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	return parseJobList(result)
}

// ListVisible returns all publicly visible jobs, newest first
func (r *JobRepository) ListVisible(ctx context.Context) ([]*model.Job, error) {
	query := `SELECT * FROM job WHERE visible = true ORDER BY created_on DESC`
	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	return parseJobList(result)
}

// SetVisibility persists a job's visibility flag.
// Concurrent writers are last-write-wins; no lost-update detection.
func (r *JobRepository) SetVisibility(ctx context.Context, id string, visible bool) error {
	query := `UPDATE type::record($id) SET visible = $visible`
	vars := map[string]interface{}{
		"id":      id,
		"visible": visible,
	}

	return r.db.Execute(ctx, query, vars)
}

func parseJobList(result []interface{}) ([]*model.Job, error) {
	records := unwrapMany(result)
	jobs := make([]*model.Job, 0, len(records))
	for _, raw := range records {
		data, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		job, err := parseJobData(data)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func parseJobData(data map[string]interface{}) (*model.Job, error) {
	var job model.Job
	if err := decodeRecord(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
