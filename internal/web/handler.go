package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"items-backend/internal/domains/item/model"
	"items-backend/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// ItemsAPI is the part of the API client the UI needs
type ItemsAPI interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	GetItem(ctx context.Context, id int64) (*model.Item, error)
	CreateItem(ctx context.Context, req *model.CreateItemRequest) (*model.CreateItemResponse, error)
	UpdateItem(ctx context.Context, id int64, req *model.UpdateItemRequest) (*model.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// Handler renders the item list and item form
type Handler struct {
	api ItemsAPI
}

func NewHandler(api ItemsAPI) *Handler {
	return &Handler{api: api}
}

// ParseTemplates parses the embedded views
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Register installs the templates and the UI routes on router
func (h *Handler) Register(router *gin.Engine) error {
	tmpl, err := ParseTemplates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/", h.List)
	router.GET("/add", h.NewForm)
	router.POST("/add", h.Create)
	router.GET("/edit/:id", h.EditForm)
	router.POST("/edit/:id", h.Update)
	router.POST("/items/:id/delete", h.Delete)

	return nil
}

// ========================================
// VIEW MODELS
// ========================================

type listView struct {
	Items []model.Item
	Error string
}

type formView struct {
	Title       string
	Action      string
	Name        string
	Description string
	Error       string
}

// ========================================
// LIST VIEW
// ========================================

// List handles GET /: fetches every item and renders the table
func (h *Handler) List(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

// Delete handles POST /items/:id/delete, then re-fetches the full list
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		h.renderList(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.api.DeleteItem(c.Request.Context(), id); err != nil {
		logError(c, "Error deleting item", err)
		h.renderList(c, statusFor(err), "Could not delete item: "+messageFor(err))
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) renderList(c *gin.Context, status int, errMsg string) {
	view := listView{Items: []model.Item{}, Error: errMsg}

	items, err := h.api.ListItems(c.Request.Context())
	if err != nil {
		logError(c, "Error fetching items", err)
		if view.Error == "" {
			view.Error = "Could not load items: " + messageFor(err)
			status = statusFor(err)
		}
	} else {
		view.Items = items
	}

	c.HTML(status, "list.html", view)
}

// ========================================
// FORM VIEW
// ========================================

// NewForm handles GET /add
func (h *Handler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", formView{Title: "Add Item", Action: "/add"})
}

// EditForm handles GET /edit/:id: fetches the item and pre-fills the form
func (h *Handler) EditForm(c *gin.Context) {
	raw := c.Param("id")
	view := formView{Title: "Edit Item", Action: "/edit/" + raw}

	id, ok := parseID(raw)
	if !ok {
		view.Error = "Invalid item ID"
		c.HTML(http.StatusBadRequest, "form.html", view)
		return
	}

	it, err := h.api.GetItem(c.Request.Context(), id)
	if err != nil {
		logError(c, "Error fetching item", err)
		view.Error = "Could not load item: " + messageFor(err)
		c.HTML(statusFor(err), "form.html", view)
		return
	}

	view.Name = it.Name
	view.Description = it.DescriptionText()
	c.HTML(http.StatusOK, "form.html", view)
}

// Create handles POST /add
func (h *Handler) Create(c *gin.Context) {
	name, description := readForm(c)
	req := &model.CreateItemRequest{Name: name, Description: description}

	if _, err := h.api.CreateItem(c.Request.Context(), req); err != nil {
		logError(c, "Error saving item", err)
		h.renderFormError(c, "Add Item", "/add", name, description, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Update handles POST /edit/:id
func (h *Handler) Update(c *gin.Context) {
	raw := c.Param("id")
	action := "/edit/" + raw
	name, description := readForm(c)

	id, ok := parseID(raw)
	if !ok {
		c.HTML(http.StatusBadRequest, "form.html", formView{
			Title: "Edit Item", Action: action, Name: name,
			Description: derefString(description), Error: "Invalid item ID",
		})
		return
	}

	req := &model.UpdateItemRequest{Name: name, Description: description}
	if _, err := h.api.UpdateItem(c.Request.Context(), id, req); err != nil {
		logError(c, "Error saving item", err)
		h.renderFormError(c, "Edit Item", action, name, description, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) renderFormError(c *gin.Context, title, action, name string, description *string, err error) {
	c.HTML(statusFor(err), "form.html", formView{
		Title:       title,
		Action:      action,
		Name:        name,
		Description: derefString(description),
		Error:       "Could not save item: " + messageFor(err),
	})
}

// ========================================
// HELPERS
// ========================================

// readForm: an empty description is sent as null
func readForm(c *gin.Context) (string, *string) {
	name := c.PostForm("name")
	description := strings.TrimSpace(c.PostForm("description"))
	if description == "" {
		return name, nil
	}
	raw := c.PostForm("description")
	return name, &raw
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// statusFor mirrors API errors; transport failures become 502
func statusFor(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

func messageFor(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "items API unavailable"
}

func logError(c *gin.Context, msg string, err error) {
	logger.Request(c).Error().Err(err).Msg(msg)
}
