package serverutils

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// AppError carries everything needed to render an error response.
type AppError struct {
	Code    int
	Message string // rendered as "error"
	Details string
	Fields  map[string]interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFound renders {"error":"<Entity> not found", "<idField>": id}.
func NewNotFound(entity, idField, id string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: entity + " not found",
		Fields:  map[string]interface{}{idField: id},
	}
}

// NewValidation lists the missing fields in a stable order.
func NewValidation(missing ...string) *AppError {
	fields := append([]string(nil), missing...)
	sort.Strings(fields)
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Missing required field(s): " + strings.Join(fields, ", "),
	}
}

func NewBadRequest(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

// NewInternal renders {"error":"<operation> error", "message": err.Error()}.
func NewInternal(operation string, err error) *AppError {
	appErr := &AppError{
		Code:    http.StatusInternalServerError,
		Message: operation + " error",
		Err:     err,
	}
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}
