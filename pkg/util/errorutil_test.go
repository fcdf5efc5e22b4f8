package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"domain passthrough", NewConflict("taken", nil), "CONFLICT", http.StatusConflict},
		{"wrapped domain", fmt.Errorf("ctx: %w", NewNotFound("department", nil)), "NOT_FOUND", http.StatusNotFound},
		{"fiber error", fiber.NewError(http.StatusBadRequest, "invalid payload"), "BAD_REQUEST", http.StatusBadRequest},
		{"no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), "NOT_FOUND", http.StatusNotFound},
		{"unavailable", NewUnavailable(errors.New("no dsn")), "DEPENDENCY_UNAVAILABLE", http.StatusServiceUnavailable},
		{"unknown", errors.New("disk on fire"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			require.NotNil(t, got)
			assert.Equal(t, tc.wantCode, got.Code)
			assert.Equal(t, tc.wantStatus, got.HTTPStatus)
		})
	}
}

func TestMapErrorNil(t *testing.T) {
	assert.NoError(t, MapError(nil))
	assert.Nil(t, ToDomainError(nil))
}

func TestDomainErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError(cause)

	assert.Equal(t, "internal server error: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
}
