package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestProblemDetails_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	pd := &ProblemDetails{
		Status: http.StatusNotFound,
		Title:  "Not Found",
		Detail: "job not found",
	}

	errMsg := pd.Error()

	if !strings.Contains(errMsg, "404") {
		t.Errorf("error message should contain status code, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "Not Found") {
		t.Errorf("error message should contain title, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "job not found") {
		t.Errorf("error message should contain detail, got: %s", errMsg)
	}
}

// ============================================================================
// WriteJSON Tests
// ============================================================================

func TestProblemDetails_WriteJSON_SetsContentType(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("job")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	contentType := rr.Header().Get("Content-Type")
	if contentType != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", contentType)
	}
}

func TestProblemDetails_WriteJSON_SetsStatusCode(t *testing.T) {
	t.Parallel()

	pd := NewForbiddenError("access denied")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}

func TestProblemDetails_WriteJSON_EncodesBody(t *testing.T) {
	t.Parallel()

	pd := NewBadRequestError("invalid input")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	var result ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if result.Title != "Bad Request" {
		t.Errorf("expected title 'Bad Request', got %q", result.Title)
	}
	if result.Detail != "invalid input" {
		t.Errorf("expected detail 'invalid input', got %q", result.Detail)
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestNewUnauthorizedError_ReturnsCorrectValues(t *testing.T) {
	t.Parallel()

	pd := NewUnauthorizedError("token expired")

	if pd.Status != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, pd.Status)
	}
	if pd.Detail != "token expired" {
		t.Errorf("expected detail 'token expired', got %q", pd.Detail)
	}
	if pd.Code != ErrCodeUnauthorized {
		t.Errorf("expected code %d, got %d", ErrCodeUnauthorized, pd.Code)
	}
	if !strings.Contains(pd.Type, "unauthorized") {
		t.Errorf("expected type to contain 'unauthorized', got %q", pd.Type)
	}
}

func TestNewNotFoundError_FormatsResourceName(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("application")

	if !strings.Contains(pd.Detail, "application") {
		t.Errorf("detail should contain resource name, got %q", pd.Detail)
	}
	if !strings.Contains(pd.Detail, "not found") {
		t.Errorf("detail should contain 'not found', got %q", pd.Detail)
	}
}

func TestNewValidationError_SingleField_ReturnsCorrectValues(t *testing.T) {
	t.Parallel()

	fieldErrors := []FieldError{
		{Field: "salary", Message: "must be no less than 0"},
	}

	pd := NewValidationError(fieldErrors)

	if pd.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, pd.Status)
	}
	if !strings.Contains(pd.Detail, "salary") {
		t.Errorf("detail should name the failing field, got %q", pd.Detail)
	}
	if len(pd.Errors) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(pd.Errors))
	}
}

func TestNewValidationError_MultipleFields_SummarizesCount(t *testing.T) {
	t.Parallel()

	fieldErrors := []FieldError{
		{Field: "title", Message: "cannot be blank"},
		{Field: "salary", Message: "must be no less than 0"},
	}

	pd := NewValidationError(fieldErrors)

	if !strings.Contains(pd.Detail, "1 more") {
		t.Errorf("detail should summarize remaining errors, got %q", pd.Detail)
	}
}

func TestNewBadSignatureError_ReturnsBadRequest(t *testing.T) {
	t.Parallel()

	pd := NewBadSignatureError()

	if pd.Status != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, pd.Status)
	}
	if pd.Code != ErrCodeBadSignature {
		t.Errorf("expected code %d, got %d", ErrCodeBadSignature, pd.Code)
	}
}

// ============================================================================
// ApplicationStatus Tests
// ============================================================================

func TestApplicationStatus_IsValid(t *testing.T) {
	t.Parallel()

	valid := []ApplicationStatus{StatusPending, StatusAccepted, StatusRejected}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	if ApplicationStatus("archived").IsValid() {
		t.Error("expected unknown status to be invalid")
	}
}
