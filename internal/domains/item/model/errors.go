package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes
const (
	ErrCodeItemNotFound       = "ITEM_NOT_FOUND"
	ErrCodeInvalidItemID      = "INVALID_ITEM_ID"
	ErrCodeInvalidItemRequest = "INVALID_ITEM_REQUEST"
	ErrCodeStore              = "STORE_ERROR"
)

// ItemError is the base error of the item domain
type ItemError struct {
	Code    string // unique error code, e.g. "ITEM_NOT_FOUND"
	Message string // human-readable message
	Err     error  // underlying error
}

func (e *ItemError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewItemNotFound(id int64) *ItemError {
	return &ItemError{
		Code:    ErrCodeItemNotFound,
		Message: fmt.Sprintf("Item %d not found", id),
	}
}

func NewInvalidItemID(raw string) *ItemError {
	return &ItemError{
		Code:    ErrCodeInvalidItemID,
		Message: fmt.Sprintf("Invalid item ID: %s", raw),
	}
}

// NewInvalidItemRequest wraps a binding or validation failure
func NewInvalidItemRequest(err error) *ItemError {
	return &ItemError{
		Code:    ErrCodeInvalidItemRequest,
		Message: "Invalid item request",
		Err:     err,
	}
}

// NewStoreError wraps a failed store operation (op: "create", "list", ...)
func NewStoreError(op string, err error) *ItemError {
	return &ItemError{
		Code:    ErrCodeStore,
		Message: fmt.Sprintf("Failed to %s item", op),
		Err:     err,
	}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsItemNotFound(err error) bool {
	return GetErrorCode(err) == ErrCodeItemNotFound
}

func IsInvalidItemID(err error) bool {
	return GetErrorCode(err) == ErrCodeInvalidItemID
}

func IsInvalidItemRequest(err error) bool {
	return GetErrorCode(err) == ErrCodeInvalidItemRequest
}

func IsStoreError(err error) bool {
	return GetErrorCode(err) == ErrCodeStore
}

// GetErrorCode returns the domain code, "UNKNOWN_ERROR" for foreign errors
func GetErrorCode(err error) string {
	var itemErr *ItemError
	if errors.As(err, &itemErr) {
		return itemErr.Code
	}
	return "UNKNOWN_ERROR"
}

// GetErrorMessage returns the message shown to clients, followed by the
// wrapped cause (store errors reach clients with the driver's text).
func GetErrorMessage(err error) string {
	var itemErr *ItemError
	if errors.As(err, &itemErr) {
		if itemErr.Err != nil {
			return fmt.Sprintf("%s: %v", itemErr.Message, itemErr.Err)
		}
		return itemErr.Message
	}
	return err.Error()
}

// MapErrorToHTTP converts an error into (status, code, message).
// Store failures stay a client-error status (400), as the API always reported them.
func MapErrorToHTTP(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "", ""
	}

	switch {
	case IsItemNotFound(err):
		return http.StatusNotFound, ErrCodeItemNotFound, "Item not found"
	case IsInvalidItemID(err), IsInvalidItemRequest(err), IsStoreError(err):
		return http.StatusBadRequest, GetErrorCode(err), GetErrorMessage(err)
	default:
		return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error"
	}
}
