package types

import (
	"fmt"
	"net/http"
)

// Error kinds reported in the "type" field of error responses.
const (
	KindIDAlreadyExists      = "IdAlreadyExists"
	KindIDMissing            = "IdMissing"
	KindIDMismatch           = "IdMismatch"
	KindEntityNotFound       = "EntityNotFound"
	KindValidation           = "Validation"
	KindMethodNotAllowed     = "MethodNotAllowed"
	KindUnsupportedMediaType = "UnsupportedMediaType"
	KindForbidden            = "Forbidden"
	KindNotFound             = "NotFound"
	KindInternal             = "Internal"
)

type CustomError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	Type       string `json:"type"`
	EntityName string `json:"entityName,omitempty"`
	ErrorKey   string `json:"errorKey,omitempty"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

func badRequest(kind, message, entity, key string) *CustomError {
	return &CustomError{
		Code:       http.StatusBadRequest,
		Message:    message,
		Type:       kind,
		EntityName: entity,
		ErrorKey:   key,
	}
}

// IDAlreadyExists rejects a create whose body already carries an identifier
func IDAlreadyExists(entity string) *CustomError {
	return badRequest(KindIDAlreadyExists, "A new "+entity+" cannot already have an ID", entity, "idexists")
}

// IDMissing rejects an update whose body has no identifier
func IDMissing(entity string) *CustomError {
	return badRequest(KindIDMissing, "Invalid id", entity, "idnull")
}

// IDMismatch rejects an update whose body identifier differs from the path
func IDMismatch(entity string) *CustomError {
	return badRequest(KindIDMismatch, "Invalid ID", entity, "idinvalid")
}

// EntityNotFound rejects an update of an identifier that is not stored
func EntityNotFound(entity string) *CustomError {
	return badRequest(KindEntityNotFound, "Entity not found", entity, "idnotfound")
}

// Validation rejects a malformed body or path parameter
func Validation(entity, message string) *CustomError {
	return badRequest(KindValidation, message, entity, "validation")
}

func MethodNotAllowed(method string) *CustomError {
	return &CustomError{Code: http.StatusMethodNotAllowed, Message: "Request method '" + method + "' is not supported", Type: KindMethodNotAllowed}
}

func UnsupportedMediaType(contentType string) *CustomError {
	return &CustomError{Code: http.StatusUnsupportedMediaType, Message: "Content-Type '" + contentType + "' is not supported", Type: KindUnsupportedMediaType}
}

func Forbidden(message string) *CustomError {
	return &CustomError{Code: http.StatusForbidden, Message: message, Type: KindForbidden}
}

// NotFound reports an absent resource; entity is empty for unknown routes
func NotFound(entity, message string) *CustomError {
	return &CustomError{Code: http.StatusNotFound, Message: message, Type: KindNotFound, EntityName: entity}
}

func Internal(message string) *CustomError {
	return &CustomError{Code: http.StatusInternalServerError, Message: message, Type: KindInternal}
}
