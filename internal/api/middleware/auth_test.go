package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodall/taskboard/internal/api/middleware"
	"github.com/rgoodall/taskboard/internal/mocks"
	"github.com/rgoodall/taskboard/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	// protected records whether the wrapped handler ran and what user ID
	// it saw.
	newProtected := func(called *bool, seenID *uuid.UUID) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*called = true
			if id, ok := middleware.GetUserID(r); ok {
				*seenID = id
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	tests := []struct {
		name        string
		authHeader  string
		validateErr error
		wantStatus  int
		wantBody    string
		wantCalled  bool
	}{
		{
			name:       "valid token passes user ID through",
			authHeader: "Bearer good-token",
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization header required",
		},
		{
			name:       "malformed header",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization format",
		},
		{
			name:       "token only, no scheme",
			authHeader: "just-a-token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid authorization format",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired-token",
			validateErr: auth.ErrExpiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    "Token expired",
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer garbage",
			validateErr: auth.ErrInvalidToken,
			wantStatus:  http.StatusUnauthorized,
			wantBody:    "Invalid token",
		},
		{
			name:        "unexpected validation failure",
			authHeader:  "Bearer token",
			validateErr: assert.AnError,
			wantStatus:  http.StatusInternalServerError,
			wantBody:    "Authentication error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				Claims:      &auth.Claims{UserID: userID},
				ValidateErr: tc.validateErr,
			}
			m := middleware.NewAuthMiddleware(jwtService)

			var called bool
			var seenID uuid.UUID
			handler := m.Authenticate(newProtected(&called, &seenID))

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantCalled, called)
			if tc.wantBody != "" {
				assert.Contains(t, w.Body.String(), tc.wantBody)
			}
			if tc.wantCalled {
				require.Equal(t, userID, seenID)
			}
		})
	}
}

func TestGetUserIDWithoutAuth(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.GetUserID(req)
	assert.False(t, ok)
}
