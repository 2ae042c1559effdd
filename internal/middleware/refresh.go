package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/domain"
	"bookshelf/internal/pkg/apperror"
	"bookshelf/internal/pkg/response"
	"bookshelf/internal/pkg/token"
)

// RefreshCookieName is the cookie the refresh middleware reads and the
// auth handler sets and clears.
const RefreshCookieName = "refreshToken"

// RefreshUserGetter resolves a presented refresh token to the user whose
// stored token equals it.
type RefreshUserGetter interface {
	GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}

// RequireRefreshToken validates the refresh cookie against both the
// signature and the stored value, then mints a replacement access token for
// the next handler to return. The refresh token itself is not rotated here.
func RequireRefreshToken(refresh, access *token.Codec, users RefreshUserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(RefreshCookieName)
		if err != nil || cookie == "" {
			response.AbortErr(c, apperror.Unauthorized("Acesso inválido"))
			return
		}

		subject, err := refresh.Parse(cookie)
		if err != nil {
			switch {
			case errors.Is(err, token.ErrTokenExpired):
				response.AbortErr(c, apperror.Unauthorized("Refresh token expirado"))
			case errors.Is(err, token.ErrTokenMissingSubject):
				response.AbortErr(c, apperror.Unauthorized("Acesso inválido"))
			default:
				response.AbortErr(c, apperror.Unauthorized("Refresh token inválido"))
			}
			return
		}

		// Revocation check: a logged-out or rotated token matches no stored
		// value even while its signature is still valid.
		user, err := users.GetByRefreshToken(c.Request.Context(), cookie)
		if err != nil {
			response.AbortErr(c, apperror.Unauthorized("Acesso inválido"))
			return
		}

		// The record found by token value must be the user the token
		// claims to speak for.
		if user.ID != subject {
			response.AbortErr(c, apperror.Unauthorized("Acesso inválido"))
			return
		}

		newAccessToken, err := access.Generate(user.ID)
		if err != nil {
			response.AbortErr(c, err)
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxNewAccessToken, newAccessToken)
		c.Next()
	}
}
