package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"agendamentos/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/consultorias", h.ListConsultorias)
	rg.GET("/consultorias/:id", h.GetConsultoria)
}

func (h *Handler) ListConsultorias(c *gin.Context) {
	list, err := h.service.ListConsultorias(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load consultorias")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"consultorias": list})
}

func (h *Handler) GetConsultoria(c *gin.Context) {
	ct, err := h.service.GetConsultoria(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Consultoria not found or inactive")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load consultoria")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"consultoria": ct})
}
