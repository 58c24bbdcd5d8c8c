package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
)

// Legacy numeric code carried on duplicate-key failures.
const duplicateKeyCode = 11000

// respondError is the single responder mapping domain errors to the uniform
// envelope {statusCode, error, message, errorCode?}. Unknown errors become 500
// without leaking internals.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	errorCode := 0
	message := err.Error()

	switch {
	case errors.Is(err, domain.ErrDuplicate):
		status = fiber.StatusBadRequest
		errorCode = duplicateKeyCode
	case errors.Is(err, domain.ErrMissingParam),
		errors.Is(err, domain.ErrBadRequest),
		errors.Is(err, domain.ErrInsufficientStock):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredential):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	default:
		message = "internal server error"
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		StatusCode: status,
		Error:      utils.StatusMessage(status),
		Message:    message,
		ErrorCode:  errorCode,
	})
}

// respondBadBody is the shared reply for unparseable request bodies.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		StatusCode: fiber.StatusBadRequest,
		Error:      utils.StatusMessage(fiber.StatusBadRequest),
		Message:    "invalid request body",
	})
}
