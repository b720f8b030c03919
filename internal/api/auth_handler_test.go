package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgoodall/taskboard/internal/api"
	"github.com/rgoodall/taskboard/internal/mocks"
	"github.com/rgoodall/taskboard/internal/service/auth"
)

// newAuthHandler builds an AuthHandler backed by in-memory dependencies.
func newAuthHandler(t *testing.T) (*api.AuthHandler, *mocks.MemoryUserStore) {
	t.Helper()
	userStore := mocks.NewMemoryUserStore()
	hasher := auth.NewBcryptHasher(bcryptTestCost)
	handler := api.NewAuthHandler(userStore, &mocks.MockJWTService{}, hasher, hasher)
	return handler, userStore
}

// bcryptTestCost keeps hashing fast in tests.
const bcryptTestCost = 4

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("successful registration returns token and user", func(t *testing.T) {
		t.Parallel()
		handler, _ := newAuthHandler(t)

		w := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
			Name:     "Alice Chen",
			Email:    "Alice@Example.com",
			Password: "correct horse battery",
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Alice Chen", resp.User.Name)
		assert.Equal(t, "alice@example.com", resp.User.Email, "email should be normalized to lowercase")
		assert.NotContains(t, w.Body.String(), "password")
		assert.NotContains(t, w.Body.String(), "correct horse battery")
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		t.Parallel()
		handler, _ := newAuthHandler(t)

		req := api.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "password123",
		}
		w := postJSON(t, handler.Register, "/api/auth/register", req)
		require.Equal(t, http.StatusCreated, w.Code)

		req.Name = "Alice Again"
		w = postJSON(t, handler.Register, "/api/auth/register", req)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already registered")
	})

	t.Run("validation failures return 400", func(t *testing.T) {
		t.Parallel()
		handler, _ := newAuthHandler(t)

		tests := []struct {
			name string
			req  api.RegisterRequest
		}{
			{
				name: "missing name",
				req:  api.RegisterRequest{Email: "a@example.com", Password: "password123"},
			},
			{
				name: "invalid email",
				req:  api.RegisterRequest{Name: "A", Email: "not-an-email", Password: "password123"},
			},
			{
				name: "password too short",
				req:  api.RegisterRequest{Name: "A", Email: "a@example.com", Password: "short"},
			},
			{
				name: "password too long",
				req: api.RegisterRequest{
					Name:     "A",
					Email:    "a@example.com",
					Password: string(make([]byte, 80)),
				},
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				w := postJSON(t, handler.Register, "/api/auth/register", tc.req)
				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()
		handler, _ := newAuthHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
			bytes.NewReader([]byte("{not json")))
		w := httptest.NewRecorder()
		handler.Register(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure returns 500 without internal detail", func(t *testing.T) {
		t.Parallel()
		handler, userStore := newAuthHandler(t)
		userStore.CreateErr = errors.New("pq: connection refused host=db.internal")

		w := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "db.internal")
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	// register registers a user through the real handler so the stored
	// password hash is genuine.
	register := func(t *testing.T, handler *api.AuthHandler, email, password string) {
		t.Helper()
		w := postJSON(t, handler.Register, "/api/auth/register", api.RegisterRequest{
			Name:     "Test User",
			Email:    email,
			Password: password,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("valid credentials return token", func(t *testing.T) {
		t.Parallel()
		handler, _ := newAuthHandler(t)
		register(t, handler, "alice@example.com", "password123")

		w := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice@example.com", resp.User.Email)
	})

	t.Run("email casing does not matter", func(t *testing.T) {
		t.Parallel()
		handler, _ := newAuthHandler(t)
		register(t, handler, "Alice@Example.com", "password123")

		// The exact string used at registration must work, as must any
		// other casing of the same address.
		for _, email := range []string{"Alice@Example.com", "alice@example.com", "ALICE@EXAMPLE.COM"} {
			w := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
				Email:    email,
				Password: "password123",
			})
			assert.Equal(t, http.StatusOK, w.Code, "login failed for %q", email)
		}
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		t.Parallel()
		handler, _ := newAuthHandler(t)
		register(t, handler, "alice@example.com", "password123")

		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "alice@example.com",
			Password: "wrong-password",
		})
		unknownEmail := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)

		var a, b map[string]interface{}
		require.NoError(t, json.Unmarshal(wrongPassword.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(unknownEmail.Body.Bytes(), &b))
		assert.Equal(t, a["error"], b["error"],
			"error message must not reveal whether the email is registered")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()
		handler, _ := newAuthHandler(t)

		w := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email: "alice@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
