package service

import (
	"context"
	"errors"

	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/model"
)

// ApplicationRepository defines the interface for application storage
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	GetByID(ctx context.Context, id string) (*model.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*model.Application, error)
	ListByCompany(ctx context.Context, companyID string) ([]*model.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]*model.Application, error)
	UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) error
}

// ApplicantReader is the read-only view of applicant storage used for joins
type ApplicantReader interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*model.Applicant, error)
}

// ApplicationService handles the application lifecycle: creation with
// deduplication and owner-gated status transitions.
type ApplicationService struct {
	applicationRepo ApplicationRepository
	jobRepo         JobRepository
	applicantRepo   ApplicantReader
	companyRepo     CompanyReader
}

// ApplicationServiceConfig holds configuration for the application service
type ApplicationServiceConfig struct {
	ApplicationRepo ApplicationRepository
	JobRepo         JobRepository
	ApplicantRepo   ApplicantReader
	CompanyRepo     CompanyReader
}

// NewApplicationService creates a new application service
func NewApplicationService(cfg ApplicationServiceConfig) *ApplicationService {
	return &ApplicationService{
		applicationRepo: cfg.ApplicationRepo,
		jobRepo:         cfg.JobRepo,
		applicantRepo:   cfg.ApplicantRepo,
		companyRepo:     cfg.CompanyRepo,
	}
}

// Apply creates an application for (jobID, applicantID) with status pending.
//
// The lookup below is a fast path for a friendly ErrAlreadyApplied; two
// concurrent applies can both pass it. The unique index on
// (job_id, applicant_id) is what actually guarantees at-most-once, and a
// constraint violation on write maps back onto the same ErrAlreadyApplied.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID string) (*model.Application, error) {
	existing, err := s.applicationRepo.GetByJobAndApplicant(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyApplied
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	application := &model.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		// Copied from the job's owner at creation time; never re-derived.
		CompanyID: job.CompanyID,
		Status:    model.StatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	return application, nil
}

// ChangeStatus moves an application to a new status. Any status may move to
// any other; the only gate is ownership of the referenced job's company.
func (s *ApplicationService) ChangeStatus(ctx context.Context, applicationID string, status model.ApplicationStatus, companyID string) (*model.Application, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if err := authorizeApplication(application, companyID); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.UpdateStatus(ctx, application.ID, status); err != nil {
		return nil, err
	}
	application.Status = status
	return application, nil
}

// ListForCompany returns applications to the company's jobs, joined with job
// and applicant details. Applicant may be nil when the identity record was
// deleted after the application was made.
func (s *ApplicationService) ListForCompany(ctx context.Context, companyID string) ([]*model.ApplicationDetail, error) {
	applications, err := s.applicationRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.GetByIDs(ctx, jobIDsOf(applications))
	if err != nil {
		return nil, err
	}
	applicants, err := s.applicantRepo.GetByIDs(ctx, applicantIDsOf(applications))
	if err != nil {
		return nil, err
	}

	details := make([]*model.ApplicationDetail, 0, len(applications))
	for _, application := range applications {
		detail := &model.ApplicationDetail{Application: *application}
		detail.Job = jobs[application.JobID]
		detail.Applicant = applicants[application.ApplicantID]
		details = append(details, detail)
	}
	return details, nil
}

// ListForApplicant returns the applicant's applications joined with job and
// company summaries.
func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID string) ([]*model.ApplicationDetail, error) {
	applications, err := s.applicationRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.GetByIDs(ctx, jobIDsOf(applications))
	if err != nil {
		return nil, err
	}
	companies, err := s.companyRepo.GetByIDs(ctx, companyIDsOfApplications(applications))
	if err != nil {
		return nil, err
	}

	details := make([]*model.ApplicationDetail, 0, len(applications))
	for _, application := range applications {
		detail := &model.ApplicationDetail{Application: *application}
		detail.Job = jobs[application.JobID]
		if company, ok := companies[application.CompanyID]; ok {
			detail.Company = company.Summary()
		}
		details = append(details, detail)
	}
	return details, nil
}

func jobIDsOf(applications []*model.Application) []string {
	seen := make(map[string]struct{}, len(applications))
	ids := make([]string, 0, len(applications))
	for _, application := range applications {
		if _, ok := seen[application.JobID]; ok {
			continue
		}
		seen[application.JobID] = struct{}{}
		ids = append(ids, application.JobID)
	}
	return ids
}

func applicantIDsOf(applications []*model.Application) []string {
	seen := make(map[string]struct{}, len(applications))
	ids := make([]string, 0, len(applications))
	for _, application := range applications {
		if _, ok := seen[application.ApplicantID]; ok {
			continue
		}
		seen[application.ApplicantID] = struct{}{}
		ids = append(ids, application.ApplicantID)
	}
	return ids
}

func companyIDsOfApplications(applications []*model.Application) []string {
	seen := make(map[string]struct{}, len(applications))
	ids := make([]string, 0, len(applications))
	for _, application := range applications {
		if _, ok := seen[application.CompanyID]; ok {
			continue
		}
		seen[application.CompanyID] = struct{}{}
		ids = append(ids, application.CompanyID)
	}
	return ids
}
