package handler

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/hiresphere/api/internal/middleware"
	"github.com/hiresphere/api/internal/model"
	"github.com/hiresphere/api/internal/service"
)

// CompanyHandler handles company account and recruiter-side endpoints
type CompanyHandler struct {
	authService        *service.AuthService
	jobService         *service.JobService
	applicationService *service.ApplicationService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(authService *service.AuthService, jobService *service.JobService, applicationService *service.ApplicationService) *CompanyHandler {
	return &CompanyHandler{
		authService:        authService,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

// RegisterRequest represents the register endpoint request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

// Validate will run validation rules
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 128)),
		validation.Field(&r.Image, validation.Required),
	)
}

// LoginRequest represents the login endpoint request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse represents a successful register or login
type AuthResponse struct {
	Company *model.Company `json:"company"`
	Token   string         `json:"token"`
}

// Register handles POST /v1/company/register
func (h *CompanyHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Image:    req.Image,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, AuthResponse{
		Company: result.Company,
		Token:   result.Credential,
	})
}

// Login handles POST /v1/company/login
func (h *CompanyHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, AuthResponse{
		Company: result.Company,
		Token:   result.Credential,
	})
}

// Me handles GET /v1/company/me
func (h *CompanyHandler) Me(w http.ResponseWriter, r *http.Request) {
	company := middleware.GetCompany(r.Context())
	if company == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}
	WriteData(w, http.StatusOK, company)
}

// PostJobRequest represents the job posting request body
type PostJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Salary      int64  `json:"salary"`
}

// Validate will run validation rules
func (r PostJobRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Salary, validation.Min(0)),
	)
}

// PostJob handles POST /v1/company/jobs
func (h *CompanyHandler) PostJob(w http.ResponseWriter, r *http.Request) {
	company := middleware.GetCompany(r.Context())
	if company == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req PostJobRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	job, err := h.jobService.Post(r.Context(), company.ID, service.PostJobRequest{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
		Level:       req.Level,
		Salary:      req.Salary,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, job)
}

// ListJobs handles GET /v1/company/jobs
func (h *CompanyHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	company := middleware.GetCompany(r.Context())
	if company == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	jobs, err := h.jobService.ListCompanyJobs(r.Context(), company.ID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, jobs)
}

// ToggleJobVisibility handles POST /v1/company/jobs/{jobId}/visibility
func (h *CompanyHandler) ToggleJobVisibility(w http.ResponseWriter, r *http.Request) {
	company := middleware.GetCompany(r.Context())
	if company == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	jobID := r.PathValue("jobId")
	if jobID == "" {
		WriteError(w, model.NewBadRequestError("job id is required"))
		return
	}

	job, err := h.jobService.ToggleVisibility(r.Context(), jobID, company.ID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, job)
}

// ListApplications handles GET /v1/company/applications
func (h *CompanyHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	company := middleware.GetCompany(r.Context())
	if company == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	applications, err := h.applicationService.ListForCompany(r.Context(), company.ID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, applications)
}

// ChangeStatusRequest represents the status change request body
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// Validate will run validation rules
func (r ChangeStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required),
	)
}

// ChangeApplicationStatus handles PATCH /v1/company/applications/{applicationId}/status
func (h *CompanyHandler) ChangeApplicationStatus(w http.ResponseWriter, r *http.Request) {
	company := middleware.GetCompany(r.Context())
	if company == nil {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	applicationID := r.PathValue("applicationId")
	if applicationID == "" {
		WriteError(w, model.NewBadRequestError("application id is required"))
		return
	}

	var req ChangeStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	application, err := h.applicationService.ChangeStatus(r.Context(), applicationID, model.ApplicationStatus(req.Status), company.ID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, application)
}
