package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealth_OK(t *testing.T) {
	h := NewHealthHandler(&stubPinger{})

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestHealth_Degraded(t *testing.T) {
	h := NewHealthHandler(&stubPinger{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}
