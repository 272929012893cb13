package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lumeo/internal/config"
)

// Token verification failure reasons. The auth gate surfaces these verbatim
// in the 401 response body.
var (
	ErrTokenInvalid = errors.New("Invalid or expired token")
	ErrEmailMissing = errors.New("Email Missing")
)

const tokenTTL = 7 * 24 * time.Hour

// TokenManager issues and verifies the HS256 bearer tokens used by the API.
// Tokens identify the account by its email claim rather than a numeric ID so
// a token keeps working across database reseeds in development.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenManager builds a TokenManager from the application config.
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
	}
}

// Generate returns a signed token for the given account email.
func (m *TokenManager) Generate(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"iss":   m.issuer,
		"aud":   m.audience,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses and validates a token string and returns the email claim.
// The returned error is one of the exported reasons above.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithAudience(m.audience), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrEmailMissing
	}
	return email, nil
}
