package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peanuts/anki-api/internal/domain"
	"github.com/peanuts/anki-api/internal/service"
	"github.com/peanuts/anki-api/internal/service/auth"
	"github.com/peanuts/anki-api/internal/service/study"
	"github.com/peanuts/anki-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"resource not owned", service.ErrNotOwned, http.StatusForbidden},
		{"deck not owned", study.ErrDeckNotOwned, http.StatusForbidden},
		{"card not owned", study.ErrCardNotOwned, http.StatusForbidden},
		{"generic not found", service.ErrNotFound, http.StatusNotFound},
		{"deck not found", study.ErrDeckNotFound, http.StatusNotFound},
		{"card not found", study.ErrCardNotFound, http.StatusNotFound},
		{"store not found", store.ErrCardNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"invalid quality", domain.ErrInvalidQuality, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped sentinel keeps its mapping",
			fmt.Errorf("failed to submit review: %w", study.ErrCardNotFound),
			http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantStatus, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"deck not found", study.ErrDeckNotFound, "Deck not found"},
		{"card not owned", study.ErrCardNotOwned, "You do not own this card"},
		{"invalid quality", domain.ErrInvalidQuality, "Quality must be between 0 and 5"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{
			"internal details never leak",
			errors.New("pq: connection refused host=db.internal"),
			"An unexpected error occurred",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantMessage, GetSafeErrorMessage(tc.err))
		})
	}
}
