package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/roadready/rental-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"wrapped not found", fmt.Errorf("lookup: %w", domain.ErrReviewNotFound), http.StatusNotFound, `{"status":"Error","message":"Review not found."}`},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, `{"status":"Error","message":"Invalid username or password."}`},
		{"conflict", domain.ErrUserExists, http.StatusConflict, `{"status":"Error","message":"User already exists!"}`},
		{"validation", fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation), http.StatusBadRequest, `{"status":"Error","message":"rating must be between 1 and 5"}`},
		{"echo error", echo.NewHTTPError(http.StatusForbidden, "access forbidden"), http.StatusForbidden, `{"status":"Error","message":"access forbidden"}`},
		{"unexpected", errors.New("socket closed by peer"), http.StatusInternalServerError, `{"status":"Error","message":"internal server error"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/x", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			assert.Equal(t, tc.code, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}

func TestHTTPErrorHandler_LogsUnexpectedErrors(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/car", nil), httptest.NewRecorder())

	NewHTTPErrorHandler(zerolog.New(&buf))(errors.New("socket closed by peer"), c)

	assert.Contains(t, buf.String(), "socket closed by peer")
	assert.Contains(t, buf.String(), "unhandled error")
}
