package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	svix "github.com/svix/svix-webhooks/go"

	"github.com/hiresphere/api/internal/database"
	"github.com/hiresphere/api/internal/model"
)

// Identity event types delivered by the provider.
const (
	eventUserCreated = "user.created"
	eventUserUpdated = "user.updated"
	eventUserDeleted = "user.deleted"
)

// EventVerifier checks the authenticity of a raw webhook delivery.
// Verification runs over the exact bytes received, before any parsing.
type EventVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

// SvixVerifier verifies deliveries signed with the svix webhook scheme
type SvixVerifier struct {
	wh *svix.Webhook
}

// NewSvixVerifier creates a verifier from the endpoint's signing secret
func NewSvixVerifier(secret string) (*SvixVerifier, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook secret: %w", err)
	}
	return &SvixVerifier{wh: wh}, nil
}

// Verify checks the svix signature headers against the raw payload
func (v *SvixVerifier) Verify(payload []byte, headers http.Header) error {
	return v.wh.Verify(payload, headers)
}

// identityEvent is the provider's envelope for user lifecycle events
type identityEvent struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		ImageURL       string `json:"image_url"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// IdentitySyncService mirrors the external identity provider's user records
// into the applicant directory.
//
// Deliveries are at-least-once and unordered, so every handler is written to
// converge: replays are no-ops, an update for a user we never saw created
// materializes the record, and deleting an absent record succeeds. Within a
// single user the provider's latest write wins.
type IdentitySyncService struct {
	verifier      EventVerifier
	applicantRepo ApplicantDirectory
	logger        *slog.Logger
}

// IdentitySyncServiceConfig holds configuration for the identity sync service
type IdentitySyncServiceConfig struct {
	Verifier      EventVerifier
	ApplicantRepo ApplicantDirectory
	Logger        *slog.Logger
}

// NewIdentitySyncService creates a new identity sync service
func NewIdentitySyncService(cfg IdentitySyncServiceConfig) *IdentitySyncService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentitySyncService{
		verifier:      cfg.Verifier,
		applicantRepo: cfg.ApplicantRepo,
		logger:        logger,
	}
}

// ApplyEvent verifies and applies one raw webhook delivery. The signature is
// checked before anything else; a delivery that fails verification causes no
// directory mutation.
func (s *IdentitySyncService) ApplyEvent(ctx context.Context, payload []byte, headers http.Header) error {
	if err := s.verifier.Verify(payload, headers); err != nil {
		return ErrBadSignature
	}

	var event identityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return ErrMalformedEvent
	}
	if event.Data.ID == "" {
		return ErrMalformedEvent
	}

	switch event.Type {
	case eventUserCreated:
		return s.applyCreated(ctx, &event)
	case eventUserUpdated:
		return s.applyUpdated(ctx, &event)
	case eventUserDeleted:
		return s.applyDeleted(ctx, &event)
	default:
		// Unknown event types are acknowledged, not rejected, so the
		// provider does not retry deliveries we will never act on.
		s.logger.Debug("ignoring identity event", "type", event.Type)
		return nil
	}
}

func (s *IdentitySyncService) applyCreated(ctx context.Context, event *identityEvent) error {
	resume := ""
	applicant := &model.Applicant{
		ID:     event.Data.ID,
		Name:   displayName(event),
		Email:  primaryEmail(event),
		Image:  event.Data.ImageURL,
		Resume: &resume,
	}

	if err := s.applicantRepo.Create(ctx, applicant); err != nil {
		// Redelivered create for a record we already hold.
		if errors.Is(err, database.ErrDuplicate) {
			s.logger.Debug("applicant already exists", "applicant_id", applicant.ID)
			return nil
		}
		return err
	}
	return nil
}

func (s *IdentitySyncService) applyUpdated(ctx context.Context, event *identityEvent) error {
	applicant := &model.Applicant{
		ID:    event.Data.ID,
		Name:  displayName(event),
		Email: primaryEmail(event),
		Image: event.Data.ImageURL,
	}

	// Upsert covers the update-before-create ordering: an update for an
	// unseen user materializes the record instead of failing.
	return s.applicantRepo.Upsert(ctx, applicant)
}

func (s *IdentitySyncService) applyDeleted(ctx context.Context, event *identityEvent) error {
	return s.applicantRepo.Delete(ctx, event.Data.ID)
}

func displayName(event *identityEvent) string {
	return strings.TrimSpace(event.Data.FirstName + " " + event.Data.LastName)
}

func primaryEmail(event *identityEvent) string {
	if len(event.Data.EmailAddresses) == 0 {
		return ""
	}
	return event.Data.EmailAddresses[0].EmailAddress
}
