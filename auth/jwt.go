package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thethao247/backend/apperrors"
)

// Claims embeds the registered claim set and adds the user identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// TokenManager issues and verifies HS256 bearer tokens. The secret is fixed
// at construction and never changes for the lifetime of the process.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue creates a signed token embedding userID, expiring at now+lifetime.
func (m *TokenManager) Issue(userID int64, lifetime time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
		},
		UserID: userID,
	})
	return token.SignedString(m.secret)
}

// Verify checks the signature and expiry and returns the embedded user ID.
// Expired tokens report apperrors.ErrExpiredToken; anything else wrong with
// the token (bad signature, malformed structure, missing claim) reports
// apperrors.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperrors.ErrExpiredToken
		}
		return 0, apperrors.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, apperrors.ErrInvalidToken
	}

	return claims.UserID, nil
}
