package handler

import (
	"io"
	"net/http"

	"github.com/hiresphere/api/internal/model"
	"github.com/hiresphere/api/internal/service"
)

// Deliveries larger than this are rejected before verification.
const maxEventSize = 1 << 20

// WebhookHandler receives identity provider deliveries
type WebhookHandler struct {
	syncService *service.IdentitySyncService
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(syncService *service.IdentitySyncService) *WebhookHandler {
	return &WebhookHandler{syncService: syncService}
}

// Identity handles POST /webhooks/identity.
//
// The raw body is read in full and handed to the sync service untouched;
// signature verification covers the exact bytes on the wire, so any reframing
// or decode before verification would break it.
func (h *WebhookHandler) Identity(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxEventSize))
	if err != nil {
		WriteError(w, model.NewBadRequestError("failed to read request body"))
		return
	}

	if err := h.syncService.ApplyEvent(r.Context(), payload, r.Header); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"received": "true"})
}
