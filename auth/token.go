package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"posts-lab/domain"
	"posts-lab/errors"
)

const bearerPrefix = "Bearer "

// CustomClaims defines the structure of the data stored inside the JWT.
// The claim names must match what the issuing auth service writes.
type CustomClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenValidator verifies bearer credentials against a shared HMAC
// secret. It performs no I/O and is safe to call per request.
type TokenValidator struct {
	key []byte
}

func NewTokenValidator(secret string) *TokenValidator {
	return &TokenValidator{key: []byte(secret)}
}

// ValidateAuthHeader checks an Authorization header value and extracts
// the caller identity. Every failure shape (missing header, wrong
// scheme, bad signature, expiry, missing claims) collapses into
// ErrUnauthenticated so nothing about the token leaks to the caller.
func (v *TokenValidator) ValidateAuthHeader(header string) (domain.AuthenticatedUser, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return domain.AuthenticatedUser{}, errors.ErrUnauthenticated
	}
	return v.ValidateToken(strings.TrimPrefix(header, bearerPrefix))
}

// ValidateToken parses and validates the signature and expiration of a
// JWT string. Only HMAC signing is accepted.
func (v *TokenValidator) ValidateToken(tokenString string) (domain.AuthenticatedUser, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return domain.AuthenticatedUser{}, errors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return domain.AuthenticatedUser{}, errors.ErrUnauthenticated
	}

	return domain.AuthenticatedUser{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}

// GenerateToken creates a signed JWT for a specific user. Token
// issuance belongs to the companion auth service; this is kept for
// tests and local tooling.
func GenerateToken(secret, userID, username string, duration time.Duration) (string, error) {
	claims := &CustomClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "posts-lab",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
