package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/greenlease/greenlease/internal/types"
)

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// ValidationErrorResponse sends a 400 response carrying per-field failures
func ValidationErrorResponse(c *fiber.Ctx, verr *types.ValidationError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":    fiber.StatusBadRequest,
		"message":   "Validation failed",
		"ok":        false,
		"fields":    verr.Fields,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      "validation",
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Ok        bool              `json:"ok"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp string            `json:"timestamp"`
	URL       string            `json:"url"`
	Type      string            `json:"type,omitempty"`
}
