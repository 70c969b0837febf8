package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kitlab/jersey-shop/internal/models"
)

func registerBody(email string) map[string]any {
	return map[string]any{
		"name":     "Karim",
		"photo":    "https://cdn.example.com/karim.jpg",
		"phone":    "+8801800000000",
		"email":    email,
		"password": "plain-password",
	}
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/admin", map[string]any{
		"username": testAdminUser,
		"password": testAdminPassword,
	})
	require.NoError(t, env.Auth.AdminLogin(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
	}
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/admin", map[string]any{
		"username": testAdminUser,
		"password": "guess",
	})
	requireHTTPError(t, env.Auth.AdminLogin(c), http.StatusUnauthorized)
}

func TestAdminLogin_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/admin", map[string]any{"username": testAdminUser})
	requireHTTPError(t, env.Auth.AdminLogin(c), http.StatusBadRequest)
}

func TestRegister_HidesPassword(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", registerBody("karim@example.com"))
	require.NoError(t, env.Auth.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotContains(t, rec.Body.String(), "plain-password")

	var resp struct {
		Success bool        `json:"success"`
		User    models.User `json:"user"`
	}
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, models.RoleUser, resp.User.Role)
	require.Equal(t, "karim@example.com", resp.User.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", registerBody("karim@example.com"))
	require.NoError(t, env.Auth.Register(c))

	_, c2 := env.doJSONRequest(http.MethodPost, "/api/auth/register", registerBody("karim@example.com"))
	requireHTTPError(t, env.Auth.Register(c2), http.StatusConflict)
}

func TestRegister_MissingEmail(t *testing.T) {
	env := newTestEnv(t)

	body := registerBody("")
	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", body)
	requireHTTPError(t, env.Auth.Register(c), http.StatusBadRequest)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", registerBody("karim@example.com"))
	require.NoError(t, env.Auth.Register(c))

	rec, c2 := env.doJSONRequest(http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "karim@example.com",
		"password": "plain-password",
	})
	require.NoError(t, env.Auth.Login(c2))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		User    models.User `json:"user"`
	}
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "karim@example.com", resp.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", registerBody("karim@example.com"))
	require.NoError(t, env.Auth.Register(c))

	_, c2 := env.doJSONRequest(http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "karim@example.com",
		"password": "nope",
	})
	requireHTTPError(t, env.Auth.Login(c2), http.StatusUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "ghost@example.com",
		"password": "whatever",
	})
	requireHTTPError(t, env.Auth.Login(c), http.StatusUnauthorized)
}

func TestCheck(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", registerBody("karim@example.com"))
	require.NoError(t, env.Auth.Register(c))

	rec, c2 := env.doJSONRequest(http.MethodGet, "/api/auth/check?email=karim@example.com&password=plain-password", nil)
	require.NoError(t, env.Auth.Check(c2))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Role    string `json:"role"`
	}
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, models.RoleUser, resp.Role)
}

func TestCheck_BadCredentials(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/auth/check?email=ghost@example.com&password=x", nil)
	requireHTTPError(t, env.Auth.Check(c), http.StatusUnauthorized)
}

func TestLogout_IsStatelessAck(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/logout", nil)
	require.NoError(t, env.Auth.Logout(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeJSON(t, rec, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "logged out", resp.Message)
}
