package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/model"
)

// Mock implementations shared across the service tests

type mockCompanyRepo struct {
	companies  map[string]*model.Company
	emailIndex map[string]*model.Company
	nextID     int
	createErr  error
	getErr     error
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{
		companies:  make(map[string]*model.Company),
		emailIndex: make(map[string]*model.Company),
	}
}

func (m *mockCompanyRepo) Create(ctx context.Context, company *model.Company) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.emailIndex[company.Email]; ok {
		return fmt.Errorf("%w: company email already registered", database.ErrDuplicate)
	}
	m.nextID++
	company.ID = fmt.Sprintf("company-%d", m.nextID)
	company.CreatedOn = time.Now()
	company.UpdatedOn = time.Now()
	m.companies[company.ID] = company
	m.emailIndex[company.Email] = company
	return nil
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id string) (*model.Company, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.companies[id], nil
}

func (m *mockCompanyRepo) GetByEmail(ctx context.Context, email string) (*model.Company, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.emailIndex[email], nil
}

func (m *mockCompanyRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Company, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make(map[string]*model.Company, len(ids))
	for _, id := range ids {
		if company, ok := m.companies[id]; ok {
			result[id] = company
		}
	}
	return result, nil
}

type mockJobRepo struct {
	jobs      map[string]*model.Job
	nextID    int
	createErr error
	getErr    error
	setErr    error
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: make(map[string]*model.Job)}
}

func (m *mockJobRepo) Create(ctx context.Context, job *model.Job) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	job.ID = fmt.Sprintf("job-%d", m.nextID)
	job.CreatedOn = time.Now()
	m.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.jobs[id], nil
}

func (m *mockJobRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Job, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make(map[string]*model.Job, len(ids))
	for _, id := range ids {
		if job, ok := m.jobs[id]; ok {
			result[id] = job
		}
	}
	return result, nil
}

func (m *mockJobRepo) ListByCompany(ctx context.Context, companyID string) ([]*model.Job, error) {
	var result []*model.Job
	for _, job := range m.jobs {
		if job.CompanyID == companyID {
			result = append(result, job)
		}
	}
	return result, nil
}

func (m *mockJobRepo) ListVisible(ctx context.Context) ([]*model.Job, error) {
	var result []*model.Job
	for _, job := range m.jobs {
		if job.Visible {
			result = append(result, job)
		}
	}
	return result, nil
}

func (m *mockJobRepo) SetVisibility(ctx context.Context, id string, visible bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	if job, ok := m.jobs[id]; ok {
		job.Visible = visible
	}
	return nil
}

type mockApplicantRepo struct {
	applicants map[string]*model.Applicant
	createErr  error
	upsertErr  error
	getErr     error
}

func newMockApplicantRepo() *mockApplicantRepo {
	return &mockApplicantRepo{applicants: make(map[string]*model.Applicant)}
}

func (m *mockApplicantRepo) Create(ctx context.Context, applicant *model.Applicant) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.applicants[applicant.ID]; ok {
		return fmt.Errorf("%w: applicant already exists", database.ErrDuplicate)
	}
	applicant.CreatedOn = time.Now()
	applicant.UpdatedOn = time.Now()
	m.applicants[applicant.ID] = applicant
	return nil
}

func (m *mockApplicantRepo) Upsert(ctx context.Context, applicant *model.Applicant) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if existing, ok := m.applicants[applicant.ID]; ok {
		existing.Name = applicant.Name
		existing.Email = applicant.Email
		existing.Image = applicant.Image
		existing.UpdatedOn = time.Now()
		return nil
	}
	applicant.CreatedOn = time.Now()
	applicant.UpdatedOn = time.Now()
	m.applicants[applicant.ID] = applicant
	return nil
}

func (m *mockApplicantRepo) GetByID(ctx context.Context, id string) (*model.Applicant, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.applicants[id], nil
}

func (m *mockApplicantRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*model.Applicant, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := make(map[string]*model.Applicant, len(ids))
	for _, id := range ids {
		if applicant, ok := m.applicants[id]; ok {
			result[id] = applicant
		}
	}
	return result, nil
}

func (m *mockApplicantRepo) UpdateResume(ctx context.Context, id, resume string) error {
	if applicant, ok := m.applicants[id]; ok {
		applicant.Resume = &resume
		applicant.UpdatedOn = time.Now()
	}
	return nil
}

func (m *mockApplicantRepo) Delete(ctx context.Context, id string) error {
	delete(m.applicants, id)
	return nil
}

type mockApplicationRepo struct {
	applications map[string]*model.Application
	nextID       int
	createErr    error
	getErr       error
	updateErr    error
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{applications: make(map[string]*model.Application)}
}

func (m *mockApplicationRepo) Create(ctx context.Context, application *model.Application) error {
	if m.createErr != nil {
		return m.createErr
	}
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

func (m *mockApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.applications[id], nil
}

func (m *mockApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*model.Application, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, application := range m.applications {
		if application.JobID == jobID && application.ApplicantID == applicantID {
			return application, nil
		}
	}
	return nil, nil
}

func (m *mockApplicationRepo) ListByCompany(ctx context.Context, companyID string) ([]*model.Application, error) {
	var result []*model.Application
	for _, application := range m.applications {
		if application.CompanyID == companyID {
			result = append(result, application)
		}
	}
	return result, nil
}

func (m *mockApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]*model.Application, error) {
	var result []*model.Application
	for _, application := range m.applications {
		if application.ApplicantID == applicantID {
			result = append(result, application)
		}
	}
	return result, nil
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if application, ok := m.applications[id]; ok {
		application.Status = status
	}
	return nil
}

// stubVerifier accepts or rejects every delivery
type stubVerifier struct {
	err error
}

func (v *stubVerifier) Verify(payload []byte, headers http.Header) error {
	return v.err
}
