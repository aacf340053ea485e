package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/seed"
	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/service"
)

// newTestServer boots the full stack — router, middleware, services,
// in-memory database, seeded catalog and admin — exactly as production
// wires it.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	srv, err := New(Config{
		Port:       0,
		DBPath:     ":memory:",
		SessionTTL: time.Hour,
		Admin: seed.Admin{
			Email:    "admin@luanda.ao",
			Username: "Administrador",
			Password: "Luanda2026",
		},
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { srv.db.Close() })

	return srv
}

// do sends a request through the router. body may be nil; cookies ride
// along when given.
func do(t *testing.T, srv *Server, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, req)
	return rr
}

// register creates an account via the API and asserts success.
func register(t *testing.T, srv *Server, email, username, password string) {
	t.Helper()
	rr := do(t, srv, http.MethodPost, "/api/register", map[string]string{
		"email": email, "username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, rr.Code)
}

// login authenticates via the API and returns the session cookie.
func login(t *testing.T, srv *Server, email, password string) *http.Cookie {
	t.Helper()
	rr := do(t, srv, http.MethodPost, "/api/login", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	for _, c := range rr.Result().Cookies() {
		if c.Name == "session" && c.Value != "" {
			return c
		}
	}
	t.Fatal("login response carried no session cookie")
	return nil
}

func TestRegister_NewEmail(t *testing.T) {
	srv := newTestServer(t)

	rr := do(t, srv, http.MethodPost, "/api/register", map[string]string{
		"email": "maria@example.com", "username": "Maria", "password": "segredo123",
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, "Conta criada com sucesso!", res.Message)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "maria@example.com", "Maria", "segredo123")

	rr := do(t, srv, http.MethodPost, "/api/register", map[string]string{
		"email": "maria@example.com", "username": "Outra", "password": "x",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var res struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.False(t, res.Success)
	assert.Equal(t, "E-mail já cadastrado", res.Message)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "maria@example.com", "Maria", "segredo123")

	// Wrong password and unknown email must be indistinguishable.
	for _, creds := range []map[string]string{
		{"email": "maria@example.com", "password": "errada"},
		{"email": "ghost@example.com", "password": "segredo123"},
	} {
		rr := do(t, srv, http.MethodPost, "/api/login", creds)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Empty(t, rr.Result().Cookies(), "failed login must not set a cookie")
	}
}

func TestLogin_SuccessSetsSessionAndAdminFlag(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "maria@example.com", "Maria", "segredo123")

	rr := do(t, srv, http.MethodPost, "/api/login", map[string]string{
		"email": "maria@example.com", "password": "segredo123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		IsAdmin bool   `json:"is_admin"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, "Login successful", res.Message)
	assert.False(t, res.IsAdmin, "regular accounts are not admins")

	// The seeded administrator is the only admin.
	rr = do(t, srv, http.MethodPost, "/api/login", map[string]string{
		"email": "admin@luanda.ao", "password": "Luanda2026",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.True(t, res.IsAdmin)
}

func TestInstitutions_RequiresSession(t *testing.T) {
	srv := newTestServer(t)

	rr := do(t, srv, http.MethodGet, "/api/institutions", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
}

func TestInstitutions_ReturnsSeededCatalog(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "maria@example.com", "Maria", "segredo123")
	cookie := login(t, srv, "maria@example.com", "segredo123")

	rr := do(t, srv, http.MethodGet, "/api/institutions", nil, cookie)
	require.Equal(t, http.StatusOK, rr.Code)

	var institutions []struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Category  string  `json:"type"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&institutions))
	require.Len(t, institutions, 24)

	first := institutions[0]
	assert.Equal(t, "Universidade Agostinho Neto (UAN)", first.Name)
	assert.Equal(t, "University", first.Category)
	assert.InDelta(t, -8.9555, first.Latitude, 0.0001)
	assert.InDelta(t, 13.1633, first.Longitude, 0.0001)
	assert.NotZero(t, first.ID)
}

func TestAdminStats_ForbiddenForNonAdmin(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "maria@example.com", "Maria", "segredo123")
	cookie := login(t, srv, "maria@example.com", "segredo123")

	rr := do(t, srv, http.MethodGet, "/api/admin/stats", nil, cookie)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	// Anonymous callers get the same answer.
	rr = do(t, srv, http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAdminStats_Aggregates(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "maria@example.com", "Maria", "segredo123")
	login(t, srv, "maria@example.com", "segredo123")
	adminCookie := login(t, srv, "admin@luanda.ao", "Luanda2026")

	rr := do(t, srv, http.MethodGet, "/api/admin/stats", nil, adminCookie)
	require.Equal(t, http.StatusOK, rr.Code)

	var stats service.Overview
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&stats))

	assert.Equal(t, 2, stats.TotalVisits, "one login each for Maria and the admin")
	assert.Equal(t, 2, stats.TotalUsers, "Maria plus the seeded admin")
	assert.Equal(t, 24, stats.TotalInstitutions)

	require.Len(t, stats.RecentLogs, 2)
	// Newest first: the admin login came after Maria's.
	assert.Equal(t, "Administrador (admin@luanda.ao)", stats.RecentLogs[0].Username)
	assert.Equal(t, "Maria (maria@example.com)", stats.RecentLogs[1].Username)
	assert.NotEmpty(t, stats.RecentLogs[0].IP)
}

func TestLogout_DestroysSession(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "maria@example.com", "Maria", "segredo123")
	cookie := login(t, srv, "maria@example.com", "segredo123")

	rr := do(t, srv, http.MethodPost, "/api/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rr.Code)

	var res struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.True(t, res.Success)

	// The old token is dead server-side, not just cleared in the browser.
	rr = do(t, srv, http.MethodGet, "/api/institutions", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogout_RequiresSession(t *testing.T) {
	srv := newTestServer(t)

	rr := do(t, srv, http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestForgotPassword_AlwaysGeneric(t *testing.T) {
	srv := newTestServer(t)
	register(t, srv, "maria@example.com", "Maria", "segredo123")

	// Registered or not, the answer is identical.
	for _, email := range []string{"maria@example.com", "ghost@example.com"} {
		rr := do(t, srv, http.MethodPost, "/api/forgot-password", map[string]string{"email": email})
		assert.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.True(t, res.Success)
		assert.Equal(t, "Se o e-mail existir, você receberá instruções.", res.Message)
	}
}
