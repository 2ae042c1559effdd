package logs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	logGroup := protected.Group("/logs")
	{
		logGroup.GET("", h.Summary)
		logGroup.GET("/errors", h.Errors)
		logGroup.GET("/heatmap", h.HeatMap)
	}
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.GetSummary(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary, "Resumo de observabilidade obtido com sucesso")
}

func (h *Handler) Errors(c *gin.Context) {
	rate, err := h.service.GetError500Rate(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, rate, "Taxa de erro 500 obtida com sucesso")
}

func (h *Handler) HeatMap(c *gin.Context) {
	heatmap, err := h.service.GetHeatMap(c.Request.Context())
	if err != nil {
		response.Err(c, err)
		return
	}
	response.Success(c, http.StatusOK, heatmap, "Heat map obtido com sucesso")
}
