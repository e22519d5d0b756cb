package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "campushelper/internal/errors"
)

// TokenType is the marker returned alongside issued tokens.
const TokenType = "bearer"

// TokenService signs and parses bearer tokens. The signing secret and TTL
// are fixed at construction; rotating the secret invalidates every
// outstanding token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given secret and TTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Generate issues a signed token for the given username, valid for the
// configured TTL.
func (s *TokenService) Generate(username string) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   username,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates structure, signature, and expiry, returning the claims.
// Expiry is reported as ErrTokenExpired; every other failure collapses to
// ErrTokenMalformed so the caller learns nothing about why.
func (s *TokenService) Parse(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenMalformed
	}
	if !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrTokenMalformed
	}
	return claims, nil
}
