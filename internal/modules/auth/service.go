package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type tokenGenerator interface {
	Generate(userID int64) (string, error)
}

// Service owns signin, guest token issuance and logout, and with them the
// rule that at most one refresh token is live per user at a time.
type Service struct {
	users   UserStore
	access  tokenGenerator
	refresh tokenGenerator
}

func NewService(users UserStore, access, refresh tokenGenerator) *Service {
	return &Service{
		users:   users,
		access:  access,
		refresh: refresh,
	}
}

// Signin verifies credentials and issues a token pair. An unknown name
// short-circuits before any hash comparison; a wrong password fails before
// any token work. Failure paths perform no writes.
func (s *Service) Signin(ctx context.Context, name, password string) (*Tokens, error) {
	user, err := s.users.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return s.issueTokens(ctx, user.ID)
}

// GenerateTokensForGuest is the signin success path without credential
// verification, used right after a guest user record is created.
func (s *Service) GenerateTokensForGuest(ctx context.Context, userID int64) (*Tokens, error) {
	return s.issueTokens(ctx, userID)
}

// Logout revokes the caller's session by clearing the stored refresh token.
// Idempotent: there is no existence check, clearing an already-clear token
// is not an error.
func (s *Service) Logout(ctx context.Context, userID int64) error {
	return s.users.UpdateRefreshToken(ctx, userID, nil)
}

// issueTokens creates the refresh token first and persists it (exactly one
// write), then mints the access token. Persisting overwrites whatever token
// was stored before: signin rotates, last write wins.
func (s *Service) issueTokens(ctx context.Context, userID int64) (*Tokens, error) {
	refreshToken, err := s.refresh.Generate(userID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateRefreshToken(ctx, userID, &refreshToken); err != nil {
		return nil, err
	}

	accessToken, err := s.access.Generate(userID)
	if err != nil {
		return nil, err
	}

	return &Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
