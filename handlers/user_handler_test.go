package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thethao247/backend/auth"
	"github.com/thethao247/backend/models"
)

const testSecret = "test-secret"

func newUserHandler(repo *fakeUserRepo) *UserHandler {
	return &UserHandler{
		Repo:                  repo,
		Tokens:                auth.NewTokenManager(testSecret),
		TokenLifetime:         7 * 24 * time.Hour,
		ExtendedTokenLifetime: 30 * 24 * time.Hour,
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) (*httptest.ResponseRecorder, ApiResponse) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func dataField(t *testing.T, resp ApiResponse, key string) interface{} {
	t.Helper()
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object")
	v, ok := data[key]
	require.True(t, ok, "data.%s missing", key)
	return v
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserHandler(repo)

	rec, resp := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"name":            "nguyen",
		"email":           "nguyen@example.com",
		"password":        "secret123",
		"confirmPassword": "secret123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)

	user := dataField(t, resp, "user").(map[string]interface{})
	assert.Equal(t, "nguyen@example.com", user["email"])
	assert.Equal(t, "N", user["avatar"])
	assert.Equal(t, models.RoleUser, user["role"])
	_, hasHash := user["password_hash"]
	assert.False(t, hasHash, "password hash must never be serialized")

	// The issued token must resolve back to the new account.
	token := dataField(t, resp, "token").(string)
	userID, err := h.Tokens.Verify(token)
	require.NoError(t, err)
	stored, _ := repo.GetUserByID(userID)
	require.NotNil(t, stored)
	assert.Equal(t, "nguyen@example.com", stored.Email)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserHandler(repo)
	require.NoError(t, repo.CreateUser(&models.User{Name: "First", Email: "dup@example.com"}, "pw1"))

	// Different name and password make no difference; the email decides.
	rec, resp := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"name":            "Second",
		"email":           "dup@example.com",
		"password":        "another-pw",
		"confirmPassword": "another-pw",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "this email is already registered", resp.Message)
}

func TestRegister_MissingFields(t *testing.T) {
	h := newUserHandler(newFakeUserRepo())

	rec, resp := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"name":     "",
		"email":    "a@example.com",
		"password": "pw",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	h := newUserHandler(newFakeUserRepo())

	rec, resp := postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"name":            "A",
		"email":           "a@example.com",
		"password":        "pw-one",
		"confirmPassword": "pw-two",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password confirmation does not match", resp.Message)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserHandler(repo)
	require.NoError(t, repo.CreateUser(&models.User{Name: "A", Email: "a@example.com"}, "correct-pw"))

	rec, resp := postJSON(t, h.Login, "/api/auth/login", map[string]interface{}{
		"email":    "a@example.com",
		"password": "correct-pw",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, dataField(t, resp, "token"))
	assert.Equal(t, []int64{1}, repo.lastLoginCalls)
}

func TestLogin_BadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserHandler(repo)
	require.NoError(t, repo.CreateUser(&models.User{Name: "A", Email: "a@example.com"}, "correct-pw"))

	cases := []struct {
		name     string
		email    string
		password string
		wantCode int
	}{
		{"wrong password", "a@example.com", "wrong-pw", http.StatusUnauthorized},
		{"unknown email", "nobody@example.com", "correct-pw", http.StatusUnauthorized},
		{"empty password", "a@example.com", "", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := postJSON(t, h.Login, "/api/auth/login", map[string]string{
				"email":    tc.email,
				"password": tc.password,
			})
			assert.Equal(t, tc.wantCode, rec.Code)
			assert.False(t, resp.Success)
			if tc.wantCode == http.StatusUnauthorized {
				// Same message whichever of email/password was wrong.
				assert.Equal(t, "incorrect email or password", resp.Message)
			}
		})
	}

	assert.Empty(t, repo.lastLoginCalls, "failed logins must not stamp last_login")
}

func TestLogin_RememberMeExtendsExpiry(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserHandler(repo)
	require.NoError(t, repo.CreateUser(&models.User{Name: "A", Email: "a@example.com"}, "pw"))

	expiryOf := func(rememberMe bool) time.Time {
		_, resp := postJSON(t, h.Login, "/api/auth/login", map[string]interface{}{
			"email":      "a@example.com",
			"password":   "pw",
			"rememberMe": rememberMe,
		})
		token := dataField(t, resp, "token").(string)

		claims := &auth.Claims{}
		_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		return claims.ExpiresAt.Time
	}

	standard := expiryOf(false)
	extended := expiryOf(true)

	assert.True(t, extended.After(standard.Add(20*24*time.Hour)),
		"rememberMe token should live roughly 23 days longer")
}

func TestAuthFlow_RegisterLoginMe(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserHandler(repo)
	mw := &AuthMiddleware{Tokens: h.Tokens, Users: repo}

	// Two accounts, so /me proves it returns the caller, not just anyone.
	_, _ = postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"name": "Alice", "email": "alice@example.com",
		"password": "pw-alice", "confirmPassword": "pw-alice",
	})
	_, _ = postJSON(t, h.Register, "/api/auth/register", map[string]string{
		"name": "Bob", "email": "bob@example.com",
		"password": "pw-bob", "confirmPassword": "pw-bob",
	})

	_, loginResp := postJSON(t, h.Login, "/api/auth/login", map[string]string{
		"email": "alice@example.com", "password": "pw-alice",
	})
	token := dataField(t, loginResp, "token").(string)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.TokenRequired(h.Me)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	user := dataField(t, resp, "user").(map[string]interface{})
	assert.Equal(t, "alice@example.com", user["email"])
}

func TestLogout(t *testing.T) {
	repo := newFakeUserRepo()
	h := newUserHandler(repo)
	mw := &AuthMiddleware{Tokens: h.Tokens, Users: repo}
	require.NoError(t, repo.CreateUser(&models.User{Name: "A", Email: "a@example.com"}, "pw"))

	token, err := h.Tokens.Issue(1, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.TokenRequired(h.Logout)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Stateless tokens: the same token still works after logout.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	mw.TokenRequired(h.Me)(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
