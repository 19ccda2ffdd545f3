package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vehicle-service/internal/domain"
	"vehicle-service/internal/service"
)

type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	TraceID string            `json:"trace_id,omitempty"`
}

// ErrorHandler is Fiber's central error handler. Domain errors raised in the
// service layer are translated to HTTP statuses here; ownership mismatches
// surface as plain 404s so resource existence is never confirmed.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"
	var fields map[string]string

	var validationErr *domain.ValidationError
	var fiberErr *fiber.Error

	switch {
	case errors.As(err, &validationErr):
		code = fiber.StatusBadRequest
		errorCode = "VALIDATION_ERROR"
		message = "Validation failed"
		fields = validationErr.Fields

	case errors.Is(err, service.ErrDuplicateVIN):
		code = fiber.StatusConflict
		errorCode = "CONFLICT"
		message = err.Error()

	case errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrPhotoNotFound),
		errors.Is(err, service.ErrPhotoAccessDenied),
		errors.Is(err, service.ErrPhotoNotReadable):
		code = fiber.StatusNotFound
		errorCode = "NOT_FOUND"
		message = notFoundMessage(err)

	case errors.Is(err, service.ErrInvalidFileType),
		errors.Is(err, service.ErrInvalidPhotoPath):
		code = fiber.StatusBadRequest
		errorCode = "BAD_REQUEST"
		message = err.Error()

	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
		switch code {
		case fiber.StatusBadRequest:
			errorCode = "BAD_REQUEST"
		case fiber.StatusUnauthorized:
			errorCode = "UNAUTHORIZED"
		case fiber.StatusForbidden:
			errorCode = "FORBIDDEN"
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusConflict:
			errorCode = "CONFLICT"
		}
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		Errors:  fields,
		TraceID: traceID,
	})
}

// notFoundMessage keeps the outward message identical for "does not exist"
// and "belongs to someone else".
func notFoundMessage(err error) string {
	if errors.Is(err, service.ErrPhotoNotFound) ||
		errors.Is(err, service.ErrPhotoAccessDenied) ||
		errors.Is(err, service.ErrPhotoNotReadable) {
		return "Photo not found"
	}
	return "Vehicle not found"
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}
