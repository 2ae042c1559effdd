package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/middleware"
	"bookshelf/internal/pkg/response"
)

// CookieConfig carries the externally configured attributes of the refresh
// cookie.
type CookieConfig struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

type Handler struct {
	service *Service
	cookies CookieConfig
}

func NewHandler(service *Service, cookies CookieConfig) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

// RegisterRoutes mounts the auth endpoints. Refresh and logout sit behind
// the refresh-cookie guard; signin is public.
func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup, refreshGuard gin.HandlerFunc) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signin", h.Signin)
		authGroup.POST("/refresh", refreshGuard, h.Refresh)
		authGroup.POST("/logout", refreshGuard, h.Logout)
	}
}

func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Dados de acesso inválidos")
		return
	}

	tokens, err := h.service.Signin(c.Request.Context(), strings.ToLower(req.Name), req.Password)
	if err != nil {
		response.Err(c, err)
		return
	}

	h.setRefreshCookie(c, tokens.RefreshToken)
	response.Success(c, http.StatusOK, gin.H{"accessToken": tokens.AccessToken}, "")
}

// Refresh returns the access token the refresh middleware minted.
func (h *Handler) Refresh(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"accessToken": c.GetString(middleware.CtxNewAccessToken),
		"message":     "Token renovado com sucesso",
	}, "")
}

func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		response.Err(c, err)
		return
	}

	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *Handler) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(
		middleware.RefreshCookieName,
		refreshToken,
		int(h.cookies.MaxAge.Seconds()),
		h.cookies.Path,
		"",
		h.cookies.Secure,
		true,
	)
}

// clearRefreshCookie uses the same attributes as setRefreshCookie so the
// browser actually drops it.
func (h *Handler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(middleware.RefreshCookieName, "", -1, h.cookies.Path, "", h.cookies.Secure, true)
}
