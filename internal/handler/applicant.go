package handler

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/hiresphere/api/internal/middleware"
	"github.com/hiresphere/api/internal/model"
	"github.com/hiresphere/api/internal/service"
)

// ApplicantHandler handles applicant-side endpoints. The principal is the
// applicant subject id extracted from the bearer credential.
type ApplicantHandler struct {
	applicantService   *service.ApplicantService
	applicationService *service.ApplicationService
}

// NewApplicantHandler creates a new applicant handler
func NewApplicantHandler(applicantService *service.ApplicantService, applicationService *service.ApplicationService) *ApplicantHandler {
	return &ApplicantHandler{
		applicantService:   applicantService,
		applicationService: applicationService,
	}
}

// Me handles GET /v1/applicant/me
func (h *ApplicantHandler) Me(w http.ResponseWriter, r *http.Request) {
	applicantID := middleware.GetApplicantID(r.Context())
	if applicantID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	applicant, err := h.applicantService.GetByID(r.Context(), applicantID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, applicant)
}

// Apply handles POST /v1/jobs/{jobId}/apply
func (h *ApplicantHandler) Apply(w http.ResponseWriter, r *http.Request) {
	applicantID := middleware.GetApplicantID(r.Context())
	if applicantID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	jobID := r.PathValue("jobId")
	if jobID == "" {
		WriteError(w, model.NewBadRequestError("job id is required"))
		return
	}

	application, err := h.applicationService.Apply(r.Context(), jobID, applicantID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, application)
}

// ListApplications handles GET /v1/applicant/applications
func (h *ApplicantHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	applicantID := middleware.GetApplicantID(r.Context())
	if applicantID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	applications, err := h.applicationService.ListForApplicant(r.Context(), applicantID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, applications)
}

// UpdateResumeRequest represents the resume update request body
type UpdateResumeRequest struct {
	Resume string `json:"resume"`
}

// Validate will run validation rules
func (r UpdateResumeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Resume, validation.Required),
	)
}

// UpdateResume handles PUT /v1/applicant/resume
func (h *ApplicantHandler) UpdateResume(w http.ResponseWriter, r *http.Request) {
	applicantID := middleware.GetApplicantID(r.Context())
	if applicantID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req UpdateResumeRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	applicant, err := h.applicantService.UpdateResume(r.Context(), applicantID, req.Resume)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, applicant)
}
