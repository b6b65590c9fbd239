package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/pitchside/fantasy-core/internal/domain/roster"
	"github.com/pitchside/fantasy-core/internal/domain/scoring"
	"github.com/pitchside/fantasy-core/internal/usecase"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: gameweek must be greater than zero", usecase.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: squad=abc", usecase.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "unauthorized",
			err:        usecase.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
			wantReason: "unauthorized",
		},
		{
			name:       "dependency unavailable",
			err:        fmt.Errorf("%w: feed down", usecase.ErrDependencyUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantReason: "dependencyUnavailable",
		},
		{
			name:       "already scored",
			err:        fmt.Errorf("insert: %w", scoring.ErrAlreadyScored),
			wantStatus: http.StatusConflict,
			wantReason: "alreadyScored",
		},
		{
			name:       "roster violation",
			err:        fmt.Errorf("%w: club-a", roster.ErrClubCapExceeded),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidSquad",
		},
		{
			name:       "budget violation",
			err:        roster.ErrBudgetExceeded,
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidSquad",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantReason: "internalError",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(tc.err)
			if mapped.HTTPStatus != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, mapped.HTTPStatus)
			}
			if mapped.Reason != tc.wantReason {
				t.Fatalf("expected reason %s, got %s", tc.wantReason, mapped.Reason)
			}
		})
	}
}
