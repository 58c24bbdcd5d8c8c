package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/application/logbook"
)

// LogHandler handles cash drawer count requests (protected).
type LogHandler struct {
	uc *logbook.LogUseCase
}

// NewLogHandler builds the handler.
func NewLogHandler(uc *logbook.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// Create records a drawer count.
func (h *LogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashCountRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.CreateCount(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns every drawer count.
func (h *LogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Counts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
