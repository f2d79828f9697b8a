package service

import (
	"context"
	"strings"

	"github.com/hiresphere/api/internal/model"
)

// ApplicantDirectory defines the interface for applicant identity storage
type ApplicantDirectory interface {
	Create(ctx context.Context, applicant *model.Applicant) error
	Upsert(ctx context.Context, applicant *model.Applicant) error
	GetByID(ctx context.Context, id string) (*model.Applicant, error)
	UpdateResume(ctx context.Context, id, resume string) error
	Delete(ctx context.Context, id string) error
}

// ApplicantService handles applicant profile reads and resume updates.
// Identity fields (name, email, image) are owned by the external provider
// and only change through the sync pipeline.
type ApplicantService struct {
	applicantRepo ApplicantDirectory
}

// ApplicantServiceConfig holds configuration for the applicant service
type ApplicantServiceConfig struct {
	ApplicantRepo ApplicantDirectory
}

// NewApplicantService creates a new applicant service
func NewApplicantService(cfg ApplicantServiceConfig) *ApplicantService {
	return &ApplicantService{applicantRepo: cfg.ApplicantRepo}
}

// GetByID retrieves an applicant profile by provider subject id
func (s *ApplicantService) GetByID(ctx context.Context, id string) (*model.Applicant, error) {
	applicant, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrApplicantNotFound
	}
	return applicant, nil
}

// UpdateResume sets the applicant's resume reference and returns the updated
// profile. The applicant record must already exist; resume writes do not
// create identity records.
func (s *ApplicantService) UpdateResume(ctx context.Context, id, resume string) (*model.Applicant, error) {
	resume = strings.TrimSpace(resume)
	if resume == "" {
		return nil, ErrResumeRequired
	}

	applicant, err := s.applicantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrApplicantNotFound
	}

	if err := s.applicantRepo.UpdateResume(ctx, id, resume); err != nil {
		return nil, err
	}
	applicant.Resume = &resume
	return applicant, nil
}
