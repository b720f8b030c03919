package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rgoodall/taskboard/internal/api/middleware"
	"github.com/rgoodall/taskboard/internal/api/shared"
)

// getUserIDFromContext extracts the authenticated user ID from the request
// context. If the ID is missing the middleware chain is misconfigured; the
// request is rejected with 401 and the caller must return immediately.
func getUserIDFromContext(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		slog.Error("user ID missing from authenticated request context",
			"path", r.URL.Path,
			"method", r.Method)
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID parses the named chi URL parameter as a UUID. On failure the
// request is rejected with 400 and the caller must return immediately.
func getPathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
