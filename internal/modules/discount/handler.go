package discount

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"agendamentos/internal/pkg/response"
	"agendamentos/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the checkout-facing preview endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/discounts/preview", h.Preview)
}

// RegisterAdminRoutes mounts code management behind the admin role gate.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/discounts", h.CreateCode)
	rg.GET("/discounts", h.ListCodes)
}

func (h *Handler) CreateCode(c *gin.Context) {
	var req CreateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", fields)
		return
	}

	d, err := h.service.CreateCode(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidValue):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Percentage discount value must be between 1 and 100")
		case errors.Is(err, ErrCodeExists):
			response.Error(c, http.StatusConflict, "CODE_EXISTS", "Discount code already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"discount_code": d})
}

func (h *Handler) ListCodes(c *gin.Context) {
	codes, err := h.service.ListCodes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"discount_codes": codes})
}

func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", fields)
		return
	}

	preview, err := h.service.Preview(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Consultoria not found or inactive")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, preview)
}
