package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"items-backend/internal/domains/item/model"
	"items-backend/internal/domains/item/service"
	"items-backend/internal/shared/response"
	"items-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ItemHandler handles HTTP requests for the item domain
type ItemHandler struct {
	service service.Service
}

// NewItemHandler creates a new item handler instance
// Dependency injection pattern - receives service from container
func NewItemHandler(service service.Service) *ItemHandler {
	return &ItemHandler{
		service: service,
	}
}

// Create handles POST /api/items
func (h *ItemHandler) Create(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.NewInvalidItemRequest(err))
		return
	}

	result, err := h.service.CreateItem(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// List handles GET /api/items
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// GetByID handles GET /api/items/:id
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	it, err := h.service.GetItem(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, it)
}

// Update handles PUT /api/items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.NewInvalidItemRequest(err))
		return
	}

	it, err := h.service.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, it)
}

// Delete handles DELETE /api/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Message(c, http.StatusOK, model.MessageItemDeleted)
}

// Export handles GET /api/items/export
func (h *ItemHandler) Export(c *gin.Context) {
	f, err := h.service.ExportItems(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		logger.Request(c).Error().Err(err).Msg("failed to write export workbook")
		response.InternalServerError(c, "Failed to export items")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="items.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ========================================
// HELPERS
// ========================================

func (h *ItemHandler) parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.handleError(c, model.NewInvalidItemID(raw))
		return 0, false
	}
	return id, true
}

func (h *ItemHandler) handleError(c *gin.Context, err error) {
	statusCode, code, message := model.MapErrorToHTTP(err)

	l := logger.Request(c)
	event := l.Warn()
	if statusCode >= http.StatusInternalServerError || model.IsStoreError(err) {
		event = l.Error()
	}
	event.Err(err).
		Str("code", code).
		Int("status", statusCode).
		Msg("item request failed")

	response.Error(c, statusCode, code, message)
}
