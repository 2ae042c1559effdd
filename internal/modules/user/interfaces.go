package user

import (
	"context"

	"bookshelf/internal/domain"
	"bookshelf/internal/modules/auth"
)

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// TokenIssuer is the piece of the auth core guest-account creation needs.
// The user module depends on auth, never the other way around.
type TokenIssuer interface {
	GenerateTokensForGuest(ctx context.Context, userID int64) (*auth.Tokens, error)
}
