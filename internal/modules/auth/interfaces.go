package auth

import (
	"context"

	"bookshelf/internal/domain"
)

// UserStore is the only persistence capability the auth core depends on.
// Guest-account creation lives in the user module, which in turn depends on
// this service; keeping this interface narrow is what breaks that cycle.
type UserStore interface {
	GetByName(ctx context.Context, name string) (*domain.User, error)
	UpdateRefreshToken(ctx context.Context, userID int64, refreshToken *string) error
}
