package handler

import (
	"net/http"

	"github.com/hiresphere/api/internal/model"
	"github.com/hiresphere/api/internal/service"
)

// JobHandler handles the public job board endpoints. No authentication:
// these only ever expose visible jobs and company summaries.
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// List handles GET /v1/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobService.ListPublic(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, jobs)
}

// Get handles GET /v1/jobs/{jobId}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobId")
	if jobID == "" {
		WriteError(w, model.NewBadRequestError("job id is required"))
		return
	}

	job, err := h.jobService.GetPublicJob(r.Context(), jobID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, job)
}
