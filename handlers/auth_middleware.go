package handlers

import (
	"net/http"
	"strings"

	"github.com/thethao247/backend/apperrors"
	"github.com/thethao247/backend/auth"
	"github.com/thethao247/backend/models"
	"github.com/thethao247/backend/repository"
)

// AuthedHandlerFunc is a handler that runs with an authenticated user already
// resolved.
type AuthedHandlerFunc func(w http.ResponseWriter, r *http.Request, user *models.User)

// AuthMiddleware guards routes behind a bearer token. It verifies the token,
// resolves the embedded user id against the user store, and hands the user
// record to the wrapped handler. It never mutates any state itself.
type AuthMiddleware struct {
	Tokens *auth.TokenManager
	Users  repository.UserRepository
}

func (m *AuthMiddleware) TokenRequired(next AuthedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, apperrors.ErrMissingToken)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")

		userID, err := m.Tokens.Verify(token)
		if err != nil {
			writeError(w, err)
			return
		}

		user, err := m.Users.GetUserByID(userID)
		if err != nil {
			writeError(w, err)
			return
		}
		if user == nil {
			writeError(w, apperrors.ErrUnknownUser)
			return
		}

		next(w, r, user)
	}
}
