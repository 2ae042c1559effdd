package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/middleware"
	"bookshelf/internal/modules/auth"
	"bookshelf/internal/pkg/response"
)

type Handler struct {
	service *Service
	cookies auth.CookieConfig
}

func NewHandler(service *Service, cookies auth.CookieConfig) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	userGroup := v1.Group("/user")
	{
		userGroup.POST("/signup", h.Signup)
		userGroup.POST("/guest", h.CreateGuestAccount)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Dados de acesso inválidos")
		return
	}

	if err := h.service.Signup(c.Request.Context(), strings.ToLower(req.Name), req.Password); err != nil {
		response.Err(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, "Usuário criado com sucesso")
}

func (h *Handler) CreateGuestAccount(c *gin.Context) {
	tokens, err := h.service.CreateGuestAccount(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}

	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(
		middleware.RefreshCookieName,
		tokens.RefreshToken,
		int(h.cookies.MaxAge.Seconds()),
		h.cookies.Path,
		"",
		h.cookies.Secure,
		true,
	)

	response.Success(c, http.StatusCreated,
		gin.H{"accessToken": tokens.AccessToken},
		"Conta de visitante criada com sucesso")
}
