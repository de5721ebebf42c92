package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_ReadinessHidesPingErrors(t *testing.T) {
	var logs bytes.Buffer
	h := NewHealthHandler(zerolog.New(&logs),
		DependencyCheck{Name: "mongodb", Ping: func(context.Context) error { return nil }},
		DependencyCheck{Name: "redis", Ping: func(context.Context) error {
			return errors.New("dial tcp 10.0.0.7:6379: connection refused")
		}},
	)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
	require.NoError(t, h.Readiness(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","dependencies":{"mongodb":"ok","redis":"unhealthy"}}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
	assert.Contains(t, logs.String(), "connection refused")
}

func TestHealthHandler_ReadinessAllHealthy(t *testing.T) {
	h := NewHealthHandler(zerolog.Nop(),
		DependencyCheck{Name: "mongodb", Ping: func(context.Context) error { return nil }},
	)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
	require.NoError(t, h.Readiness(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","dependencies":{"mongodb":"ok"}}`, rec.Body.String())
}
