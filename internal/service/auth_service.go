package service

import (
	"context"

	"campushelper/internal/auth"
	apperrors "campushelper/internal/errors"
	"campushelper/internal/model"
	"campushelper/internal/repository"
)

// AuthService handles authentication and authorization.
type AuthService interface {
	// Login verifies a username/password pair and issues a bearer token.
	Login(ctx context.Context, username, password string) (token string, err error)
	// RequireAuthenticated verifies a presented token and resolves its
	// principal against current store state.
	RequireAuthenticated(ctx context.Context, tokenString string) (*model.Principal, error)
	// RequireAdmin verifies the token and additionally requires admin rights.
	RequireAdmin(ctx context.Context, tokenString string) (*model.Principal, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

// Login looks up the user, verifies the password, and signs a token. Unknown
// username and wrong password both fail with ErrInvalidCredentials; nothing
// reveals which one it was.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", apperrors.ErrAccountDisabled
	}
	return s.tokens.Generate(user.Username)
}

// RequireAuthenticated runs the verification gates in order: signature,
// expiry, subject resolution, active flag. The subject is re-resolved from
// the store on every call, so deactivating a user takes effect immediately
// even while the token is still cryptographically valid.
func (s *authService) RequireAuthenticated(ctx context.Context, tokenString string) (*model.Principal, error) {
	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}
	return &model.Principal{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		IsActive: user.IsActive,
	}, nil
}

// RequireAdmin rejects valid non-admin principals with ErrForbidden.
func (s *authService) RequireAdmin(ctx context.Context, tokenString string) (*model.Principal, error) {
	principal, err := s.RequireAuthenticated(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if !principal.IsAdmin {
		return nil, apperrors.ErrForbidden
	}
	return principal, nil
}
