package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/thethao247/backend/apperrors"
	"github.com/thethao247/backend/auth"
	"github.com/thethao247/backend/models"
	"github.com/thethao247/backend/repository"
)

type UserHandler struct {
	Repo   repository.UserRepository
	Tokens *auth.TokenManager

	TokenLifetime         time.Duration
	ExtendedTokenLifetime time.Duration
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// Register handler
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{
			Success: false,
			Message: "Invalid request method",
		})
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, apperrors.ErrValidation)
		return
	}
	if req.Password != req.ConfirmPassword {
		writeError(w, apperrors.ErrPasswordMismatch)
		return
	}

	user := &models.User{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: avatarFor(req.Name),
		Role:   models.RoleUser,
	}

	if err := h.Repo.CreateUser(user, req.Password); err != nil {
		writeError(w, err)
		return
	}

	token, err := h.Tokens.Issue(user.ID, h.TokenLifetime)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Registration successful!",
		Data: map[string]interface{}{
			"user":  user,
			"token": token,
		},
	})
}

// Login handler
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{
			Success: false,
			Message: "Invalid request method",
		})
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, apperrors.ErrValidation)
		return
	}

	user, err := h.Repo.GetUserByEmail(req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	// One undifferentiated failure for unknown email and wrong password.
	if user == nil {
		writeError(w, apperrors.ErrInvalidCredentials)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, apperrors.ErrInvalidCredentials)
		return
	}

	if err := h.Repo.UpdateLastLogin(user.ID); err != nil {
		// Login still succeeds; the stamp is best-effort.
		fmt.Printf("failed to update last_login for user %d: %v\n", user.ID, err)
	}

	lifetime := h.TokenLifetime
	if req.RememberMe {
		lifetime = h.ExtendedTokenLifetime
	}

	token, err := h.Tokens.Issue(user.ID, lifetime)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Login successful!",
		Data: map[string]interface{}{
			"user":  user,
			"token": token,
		},
	})
}

// Me returns the account resolved from the bearer token.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request, user *models.User) {
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]interface{}{
			"user": user,
		},
	})
}

// Logout acknowledges the request. Tokens are stateless and carry their own
// expiry; there is no revocation list, so the token stays valid until it
// expires on its own.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request, user *models.User) {
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// avatarFor picks the display glyph: the upper-cased first rune of the name.
func avatarFor(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return ""
	}
	return strings.ToUpper(string(runes[0]))
}
