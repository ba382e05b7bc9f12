package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salone/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
}

func (h *Handler) ListServices(c *gin.Context) {
	cats, err := h.service.ListCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load catalog")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": cats})
}
