package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookshelf/internal/domain"
	"bookshelf/internal/modules/auth"
)

const guestNamePrefix = "guest_"

// Service coordinates account creation. It sits above both the user store
// and the auth core, so neither of those depends on the other.
type Service struct {
	users  UserStore
	tokens TokenIssuer
}

func NewService(users UserStore, tokens TokenIssuer) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

func (s *Service) Signup(ctx context.Context, name, password string) error {
	exists, err := s.users.ExistsByName(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.users.Create(ctx, &domain.User{
		Name:         name,
		PasswordHash: string(hash),
	})
}

// CreateGuestAccount creates a throwaway user with generated credentials
// and returns a usable token pair. The random name space makes a collision
// astronomically unlikely, so there is no uniqueness retry: a clash simply
// propagates as a store error.
func (s *Service) CreateGuestAccount(ctx context.Context) (*auth.Tokens, error) {
	name := guestNamePrefix + randomFragment()
	password := uuid.NewString()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	guest := &domain.User{
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, guest); err != nil {
		return nil, err
	}

	return s.tokens.GenerateTokensForGuest(ctx, guest.ID)
}

func randomFragment() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
