package handler

import (
	batchapp "github.com/cosmo/backend/internal/application/batch"
	"github.com/cosmo/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BatchTemplateHandler handles batch template API endpoints
type BatchTemplateHandler struct {
	BaseHandler
	service *batchapp.TemplateService
}

// NewBatchTemplateHandler creates a new BatchTemplateHandler
func NewBatchTemplateHandler(service *batchapp.TemplateService) *BatchTemplateHandler {
	return &BatchTemplateHandler{service: service}
}

// RegisterRoutes registers the batch template routes
func (h *BatchTemplateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	templates := rg.Group("/batch-templates")
	{
		templates.POST("", h.Create)
		templates.GET("", h.List)
		templates.GET("/:id", h.GetByID)
	}
}

// Create creates a new batch template with its product lines
func (h *BatchTemplateHandler) Create(c *gin.Context) {
	var req batchapp.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID retrieves a batch template by ID
func (h *BatchTemplateHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid template ID format")
		return
	}

	result, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// List retrieves a paginated list of batch templates
func (h *BatchTemplateHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paginated(c, result)
}
