package book

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/middleware"
	"bookshelf/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the catalog under an already-protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	bookGroup := protected.Group("/books")
	{
		bookGroup.POST("", h.Create)
		bookGroup.GET("", h.List)
		bookGroup.GET("/:isbn", h.Get)
		bookGroup.PUT("/:isbn", h.Update)
		bookGroup.PATCH("/:isbn/favorite", h.ToggleFavorite)
		bookGroup.DELETE("/:isbn", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Dados do livro inválidos")
		return
	}

	userID := c.GetInt64(middleware.CtxUserID)
	if err := h.service.Create(c.Request.Context(), userID, req); err != nil {
		response.Err(c, err)
		return
	}

	response.Success(c, http.StatusCreated, nil, "Livro adicionado com sucesso")
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	q := ListQuery{
		Search: strings.TrimSpace(c.Query("search")),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	switch c.Query("favorites") {
	case "true", "1":
		v := true
		q.Favorites = &v
	case "false", "0":
		v := false
		q.Favorites = &v
	}

	result, err := h.service.List(c.Request.Context(), userID, q)
	if err != nil {
		response.Err(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, "")
}

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	b, err := h.service.Get(c.Request.Context(), c.Param("isbn"), userID)
	if err != nil {
		response.Err(c, err)
		return
	}

	response.Success(c, http.StatusOK, b, "")
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Dados do livro inválidos")
		return
	}

	userID := c.GetInt64(middleware.CtxUserID)
	b, err := h.service.Update(c.Request.Context(), c.Param("isbn"), userID, req)
	if err != nil {
		response.Err(c, err)
		return
	}

	response.Success(c, http.StatusOK, b, "Livro atualizado com sucesso")
}

func (h *Handler) ToggleFavorite(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	b, err := h.service.ToggleFavorite(c.Request.Context(), c.Param("isbn"), userID)
	if err != nil {
		response.Err(c, err)
		return
	}

	response.Success(c, http.StatusOK, b, "Favorito atualizado com sucesso")
}

func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64(middleware.CtxUserID)

	if err := h.service.Delete(c.Request.Context(), c.Param("isbn"), userID); err != nil {
		response.Err(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil, "Livro removido com sucesso")
}
