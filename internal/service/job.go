package service

import (
	"context"
	"strings"

	"github.com/hiresphere/api/internal/model"
)

// JobRepository defines the interface for job storage
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*model.Job, error)
	ListByCompany(ctx context.Context, companyID string) ([]*model.Job, error)
	ListVisible(ctx context.Context) ([]*model.Job, error)
	SetVisibility(ctx context.Context, id string, visible bool) error
}

// CompanyReader is the read-only view of company storage used for joins
type CompanyReader interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*model.Company, error)
}

// JobService handles job posting and the visibility lifecycle
type JobService struct {
	jobRepo     JobRepository
	companyRepo CompanyReader
}

// JobServiceConfig holds configuration for the job service
type JobServiceConfig struct {
	JobRepo     JobRepository
	CompanyRepo CompanyReader
}

// NewJobService creates a new job service
func NewJobService(cfg JobServiceConfig) *JobService {
	return &JobService{
		jobRepo:     cfg.JobRepo,
		companyRepo: cfg.CompanyRepo,
	}
}

// PostJobRequest represents a new job posting
type PostJobRequest struct {
	Title       string
	Description string
	Location    string
	Category    string
	Level       string
	Salary      int64
}

// Post creates a new job owned by the given company. New jobs are visible.
func (s *JobService) Post(ctx context.Context, companyID string, req PostJobRequest) (*model.Job, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if req.Salary < 0 {
		return nil, ErrNegativeSalary
	}

	job := &model.Job{
		Title:       title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Level:       req.Level,
		Salary:      req.Salary,
		CompanyID:   companyID,
		Visible:     true,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// ListCompanyJobs returns all jobs owned by the company, newest first
func (s *JobService) ListCompanyJobs(ctx context.Context, companyID string) ([]*model.Job, error) {
	return s.jobRepo.ListByCompany(ctx, companyID)
}

// ToggleVisibility flips a job's visibility flag and returns the updated job.
// This is a flip, not a set: two toggles return to the original state, and
// concurrent toggles by the same owner are last-write-wins.
func (s *JobService) ToggleVisibility(ctx context.Context, jobID, companyID string) (*model.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := authorizeJob(job, companyID); err != nil {
		return nil, err
	}

	job.Visible = !job.Visible
	if err := s.jobRepo.SetVisibility(ctx, job.ID, job.Visible); err != nil {
		return nil, err
	}
	return job, nil
}

// ListPublic returns all visible jobs joined with their company summaries
func (s *JobService) ListPublic(ctx context.Context) ([]*model.JobWithCompany, error) {
	jobs, err := s.jobRepo.ListVisible(ctx)
	if err != nil {
		return nil, err
	}

	companies, err := s.companyRepo.GetByIDs(ctx, companyIDsOf(jobs))
	if err != nil {
		return nil, err
	}

	listed := make([]*model.JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		entry := &model.JobWithCompany{Job: *job}
		if company, ok := companies[job.CompanyID]; ok {
			entry.Company = company.Summary()
		}
		listed = append(listed, entry)
	}
	return listed, nil
}

// GetPublicJob returns a single job joined with its company summary
func (s *JobService) GetPublicJob(ctx context.Context, jobID string) (*model.JobWithCompany, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	entry := &model.JobWithCompany{Job: *job}
	companies, err := s.companyRepo.GetByIDs(ctx, []string{job.CompanyID})
	if err != nil {
		return nil, err
	}
	if company, ok := companies[job.CompanyID]; ok {
		entry.Company = company.Summary()
	}
	return entry, nil
}

func companyIDsOf(jobs []*model.Job) []string {
	seen := make(map[string]struct{}, len(jobs))
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		if _, ok := seen[job.CompanyID]; ok {
			continue
		}
		seen[job.CompanyID] = struct{}{}
		ids = append(ids, job.CompanyID)
	}
	return ids
}
