package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/middleware"
	"github.com/hiresphere/api/internal/model"
	"github.com/hiresphere/api/internal/service"
	"github.com/hiresphere/api/pkg/token"
)

// ============================================================================
// In-memory repositories
// ============================================================================

type memCompanyRepo struct {
	companies map[string]*model.Company
	nextID    int
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: make(map[string]*model.Company)}
}

func (m *memCompanyRepo) Create(ctx context.Context, company *model.Company) error {
	for _, existing := range m.companies {
		if existing.Email == company.Email {
			return fmt.Errorf("%w: company email already registered", database.ErrDuplicate)
		}
	}
	m.nextID++
	company.ID = fmt.Sprintf("company-%d", m.nextID)
	company.CreatedOn = time.Now()
	company.UpdatedOn = time.Now()
	m.companies[company.ID] = company
	return nil
}

func (m *memCompanyRepo) GetByID(ctx context.Context, id string) (*model.Company, error) {
	return m.companies[id], nil
}

func (m *memCompanyRepo) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	for _, company := range m.companies {
		if company.Email == email {
			return company, nil
		}
	}
	return nil, nil
}

func (m *memCompanyRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Company, error) {
	result := make(map[string]*model.Company, len(ids))
	for _, id := range ids {
		if company, ok := m.companies[id]; ok {
			result[id] = company
		}
	}
	return result, nil
}

type memJobRepo struct {
	jobs   map[string]*model.Job
	nextID int
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[string]*model.Job)}
}

func (m *memJobRepo) Create(ctx context.Context, job *model.Job) error {
	m.nextID++
	job.ID = fmt.Sprintf("job-%d", m.nextID)
	job.CreatedOn = time.Now()
	m.jobs[job.ID] = job
	return nil
}

func (m *memJobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	return m.jobs[id], nil
}

func (m *memJobRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Job, error) {
	result := make(map[string]*model.Job, len(ids))
	for _, id := range ids {
		if job, ok := m.jobs[id]; ok {
			result[id] = job
		}
	}
	return result, nil
}

func (m *memJobRepo) ListByCompany(ctx context.Context, companyID string) ([]*model.Job, error) {
	var result []*model.Job
	for _, job := range m.jobs {
		if job.CompanyID == companyID {
			result = append(result, job)
		}
	}
	return result, nil
}

func (m *memJobRepo) ListVisible(ctx context.Context) ([]*model.Job, error) {
	var result []*model.Job
	for _, job := range m.jobs {
		if job.Visible {
			result = append(result, job)
		}
	}
	return result, nil
}

func (m *memJobRepo) SetVisibility(ctx context.Context, id string, visible bool) error {
	if job, ok := m.jobs[id]; ok {
		job.Visible = visible
	}
	return nil
}

type memApplicantRepo struct {
	applicants map[string]*model.Applicant
}

func newMemApplicantRepo() *memApplicantRepo {
	return &memApplicantRepo{applicants: make(map[string]*model.Applicant)}
}

func (m *memApplicantRepo) Create(ctx context.Context, applicant *model.Applicant) error {
	if _, ok := m.applicants[applicant.ID]; ok {
		return fmt.Errorf("%w: applicant already exists", database.ErrDuplicate)
	}
	m.applicants[applicant.ID] = applicant
	return nil
}

func (m *memApplicantRepo) Upsert(ctx context.Context, applicant *model.Applicant) error {
	if existing, ok := m.applicants[applicant.ID]; ok {
		existing.Name = applicant.Name
		existing.Email = applicant.Email
		existing.Image = applicant.Image
		return nil
	}
	m.applicants[applicant.ID] = applicant
	return nil
}

func (m *memApplicantRepo) GetByID(ctx context.Context, id string) (*model.Applicant, error) {
	return m.applicants[id], nil
}

func (m *memApplicantRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Applicant, error) {
	result := make(map[string]*model.Applicant, len(ids))
	for _, id := range ids {
		if applicant, ok := m.applicants[id]; ok {
			result[id] = applicant
		}
	}
	return result, nil
}

func (m *memApplicantRepo) UpdateResume(ctx context.Context, id, resume string) error {
	if applicant, ok := m.applicants[id]; ok {
		applicant.Resume = &resume
	}
	return nil
}

func (m *memApplicantRepo) Delete(ctx context.Context, id string) error {
	delete(m.applicants, id)
	return nil
}

type memApplicationRepo struct {
	applications map[string]*model.Application
	nextID       int
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{applications: make(map[string]*model.Application)}
}

func (m *memApplicationRepo) Create(ctx context.Context, application *model.Application) error {
	for _, existing := range m.applications {
		if existing.JobID == application.JobID && existing.ApplicantID == application.ApplicantID {
			return fmt.Errorf("%w: application already exists", database.ErrDuplicate)
		}
	}
	m.nextID++
	application.ID = fmt.Sprintf("application-%d", m.nextID)
	application.CreatedOn = time.Now()
	m.applications[application.ID] = application
	return nil
}

func (m *memApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	return m.applications[id], nil
}

func (m *memApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*model.Application, error) {
	for _, application := range m.applications {
		if application.JobID == jobID && application.ApplicantID == applicantID {
			return application, nil
		}
	}
	return nil, nil
}

func (m *memApplicationRepo) ListByCompany(ctx context.Context, companyID string) ([]*model.Application, error) {
	var result []*model.Application
	for _, application := range m.applications {
		if application.CompanyID == companyID {
			result = append(result, application)
		}
	}
	return result, nil
}

func (m *memApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]*model.Application, error) {
	var result []*model.Application
	for _, application := range m.applications {
		if application.ApplicantID == applicantID {
			result = append(result, application)
		}
	}
	return result, nil
}

func (m *memApplicationRepo) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	if application, ok := m.applications[id]; ok {
		application.Status = status
	}
	return nil
}

// okVerifier accepts or rejects every webhook delivery
type okVerifier struct {
	err error
}

func (v *okVerifier) Verify(payload []byte, headers http.Header) error {
	return v.err
}

// ============================================================================
// Test environment
// ============================================================================

type testEnv struct {
	companyRepo     *memCompanyRepo
	jobRepo         *memJobRepo
	applicantRepo   *memApplicantRepo
	applicationRepo *memApplicationRepo
	verifier        *okVerifier

	authService        *service.AuthService
	jobService         *service.JobService
	applicantService   *service.ApplicantService
	applicationService *service.ApplicationService
	syncService        *service.IdentitySyncService
	tokens             *token.Service

	companyHandler   *CompanyHandler
	jobHandler       *JobHandler
	applicantHandler *ApplicantHandler
	webhookHandler   *WebhookHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		companyRepo:     newMemCompanyRepo(),
		jobRepo:         newMemJobRepo(),
		applicantRepo:   newMemApplicantRepo(),
		applicationRepo: newMemApplicationRepo(),
		verifier:        &okVerifier{},
	}

	tokens, err := token.NewService(token.Config{
		Secret:     []byte("test-secret"),
		Issuer:     "test-issuer",
		Expiration: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}
	env.tokens = tokens

	env.authService = service.NewAuthService(service.AuthServiceConfig{
		CompanyRepo: env.companyRepo,
		Tokens:      tokens,
	})
	env.jobService = service.NewJobService(service.JobServiceConfig{
		JobRepo:     env.jobRepo,
		CompanyRepo: env.companyRepo,
	})
	env.applicantService = service.NewApplicantService(service.ApplicantServiceConfig{
		ApplicantRepo: env.applicantRepo,
	})
	env.applicationService = service.NewApplicationService(service.ApplicationServiceConfig{
		ApplicationRepo: env.applicationRepo,
		JobRepo:         env.jobRepo,
		ApplicantRepo:   env.applicantRepo,
		CompanyRepo:     env.companyRepo,
	})
	env.syncService = service.NewIdentitySyncService(service.IdentitySyncServiceConfig{
		Verifier:      env.verifier,
		ApplicantRepo: env.applicantRepo,
	})

	env.companyHandler = NewCompanyHandler(env.authService, env.jobService, env.applicationService)
	env.jobHandler = NewJobHandler(env.jobService)
	env.applicantHandler = NewApplicantHandler(env.applicantService, env.applicationService)
	env.webhookHandler = NewWebhookHandler(env.syncService)

	return env
}

// router wires the handlers the same way cmd/server does, minus the ambient
// middleware that tests do not need.
func (env *testEnv) router() http.Handler {
	authCompany := middleware.AuthCompany(env.authService)
	authApplicant := middleware.AuthApplicant(env.authService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/company/register", env.companyHandler.Register)
	mux.HandleFunc("POST /v1/company/login", env.companyHandler.Login)
	mux.Handle("GET /v1/company/me", authCompany(http.HandlerFunc(env.companyHandler.Me)))
	mux.Handle("POST /v1/company/jobs", authCompany(http.HandlerFunc(env.companyHandler.PostJob)))
	mux.Handle("GET /v1/company/jobs", authCompany(http.HandlerFunc(env.companyHandler.ListJobs)))
	mux.Handle("POST /v1/company/jobs/{jobId}/visibility", authCompany(http.HandlerFunc(env.companyHandler.ToggleJobVisibility)))
	mux.Handle("GET /v1/company/applications", authCompany(http.HandlerFunc(env.companyHandler.ListApplications)))
	mux.Handle("PATCH /v1/company/applications/{applicationId}/status", authCompany(http.HandlerFunc(env.companyHandler.ChangeApplicationStatus)))

	mux.HandleFunc("GET /v1/jobs", env.jobHandler.List)
	mux.HandleFunc("GET /v1/jobs/{jobId}", env.jobHandler.Get)

	mux.Handle("GET /v1/applicant/me", authApplicant(http.HandlerFunc(env.applicantHandler.Me)))
	mux.Handle("POST /v1/jobs/{jobId}/apply", authApplicant(http.HandlerFunc(env.applicantHandler.Apply)))
	mux.Handle("GET /v1/applicant/applications", authApplicant(http.HandlerFunc(env.applicantHandler.ListApplications)))
	mux.Handle("PUT /v1/applicant/resume", authApplicant(http.HandlerFunc(env.applicantHandler.UpdateResume)))

	mux.HandleFunc("POST /webhooks/identity", env.webhookHandler.Identity)

	return mux
}

func (env *testEnv) registerCompany(t *testing.T, name string) *service.AuthResult {
	t.Helper()

	result, err := env.authService.Register(context.Background(), service.RegisterRequest{
		Name:     name,
		Email:    name + "@example.com",
		Password: "password123",
		Image:    "https://cdn.example/" + name + ".png",
	})
	if err != nil {
		t.Fatalf("failed to register company: %v", err)
	}
	return result
}
