package utils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/jam-build-entities/internal/types"
	"github.com/rs/zerolog"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data any, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends the standard error envelope
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(ErrorResponseStruct{
		Status:    status,
		Message:   message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
	})
}

// EntityErrorResponse sends the error envelope for a CustomError, with the
// generated-app error alert headers when the error names an entity
func EntityErrorResponse(c *fiber.Ctx, appName string, e *types.CustomError) error {
	if e.ErrorKey != "" {
		ErrorAlert(c, appName, e.ErrorKey, e.EntityName)
	}
	return c.Status(e.Code).JSON(ErrorResponseStruct{
		Status:     e.Code,
		Message:    e.Message,
		Ok:         false,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		URL:        c.OriginalURL(),
		Type:       e.Type,
		EntityName: e.EntityName,
		ErrorKey:   e.ErrorKey,
	})
}

// EntityAlert sets the success alert headers, e.g. X-myApp-alert: myApp.a.created
func EntityAlert(c *fiber.Ctx, appName, entity, action, param string) {
	c.Set("X-"+appName+"-alert", appName+"."+entity+"."+action)
	c.Set("X-"+appName+"-params", param)
}

// ErrorAlert sets the failure alert headers, e.g. X-myApp-error: error.idexists
func ErrorAlert(c *fiber.Ctx, appName, errorKey, entity string) {
	c.Set("X-"+appName+"-error", "error."+errorKey)
	c.Set("X-"+appName+"-params", entity)
}

// ErrorHandler converts handler errors into the error envelope
func ErrorHandler(appName string, log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var customErr *types.CustomError
		if errors.As(err, &customErr) {
			return EntityErrorResponse(c, appName, customErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			kind := types.KindInternal
			switch fiberErr.Code {
			case fiber.StatusNotFound:
				kind = types.KindNotFound
			case fiber.StatusMethodNotAllowed:
				kind = types.KindMethodNotAllowed
			case fiber.StatusUnsupportedMediaType:
				kind = types.KindUnsupportedMediaType
			case fiber.StatusBadRequest:
				kind = types.KindValidation
			}
			return ErrorResponse(c, fiberErr.Message, fiberErr.Code, kind)
		}

		log.Error().Err(err).Str("url", c.OriginalURL()).Msg("Unhandled request error")
		return ErrorResponse(c, "Internal Server Error", fiber.StatusInternalServerError, types.KindInternal)
	}
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status     int    `json:"status"`
	Message    string `json:"message"`
	Ok         bool   `json:"ok"`
	Timestamp  string `json:"timestamp"`
	URL        string `json:"url"`
	Type       string `json:"type,omitempty"`
	EntityName string `json:"entityName,omitempty"`
	ErrorKey   string `json:"errorKey,omitempty"`
}
