package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/domain"
	"bookshelf/internal/pkg/apperror"
	"bookshelf/internal/pkg/response"
	"bookshelf/internal/pkg/token"
)

// Context keys set by the auth middleware chain.
const (
	CtxUserID         = "user_id"
	CtxNewAccessToken = "new_access_token"
)

// UserGetter resolves a token subject to a live user record.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RequireAccessToken gates protected routes. Every request pays for a full
// signature check plus a user lookup: a still-valid token for a deleted
// user must not pass.
func RequireAccessToken(access *token.Codec, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortErr(c, apperror.Unauthorized("Acesso inválido"))
			return
		}

		// Without the bearer prefix the raw header value is treated as the
		// token; it fails signature verification like any garbage token.
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		userID, err := access.Parse(tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrTokenExpired):
				response.AbortErr(c, apperror.Unauthorized("Token expirado"))
			case errors.Is(err, token.ErrTokenMissingSubject):
				response.AbortErr(c, apperror.Unauthorized("Acesso inválido"))
			default:
				response.AbortErr(c, apperror.Unauthorized("Token inválido"))
			}
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.AbortErr(c, apperror.Unauthorized("Acesso inválido"))
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Next()
	}
}
