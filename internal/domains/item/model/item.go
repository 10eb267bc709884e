package model

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Item is the single managed resource.
// id and created_at are assigned by the store and never change.
type Item struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ========================================
// REQUEST DTOs
// ========================================

// CreateItemRequest - POST /api/items
type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r CreateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.By(notBlank),
		),
	)
}

// UpdateItemRequest - PUT /api/items/:id
// Only name and description are mutable.
type UpdateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.By(notBlank),
		),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return errors.New("name must not be blank")
	}
	return nil
}

// ========================================
// RESPONSE DTOs
// ========================================

// CreateItemResponse echoes the assigned id with the created fields
type CreateItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// MessageItemDeleted - DELETE /api/items/:id confirmation
const MessageItemDeleted = "Item deleted successfully"

func (i Item) ToCreateResponse() *CreateItemResponse {
	return &CreateItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
	}
}

// DescriptionText returns the description or "" when it is NULL
func (i Item) DescriptionText() string {
	if i.Description == nil {
		return ""
	}
	return *i.Description
}
