package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/application/membership"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

// MembershipHandler handles loyalty membership requests (protected).
type MembershipHandler struct {
	uc *membership.MembershipUseCase
}

// NewMembershipHandler builds the handler.
func NewMembershipHandler(uc *membership.MembershipUseCase) *MembershipHandler {
	return &MembershipHandler{uc: uc}
}

// Create registers a membership.
func (h *MembershipHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMembershipRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns memberships filtered by phone substring and type.
func (h *MembershipHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(repository.MembershipFilter{
		Search: c.Query("search"),
		Type:   c.Query("type"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID returns one membership.
func (h *MembershipHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdatePoints replaces the point balance and invoice list of the membership
// with the given phone number.
func (h *MembershipHandler) UpdatePoints(c *fiber.Ctx) error {
	var in dto.UpdatePointsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.UpdatePoints(GetUserID(c), c.Params("phoneNumber"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update applies a partial membership update.
func (h *MembershipHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMembershipRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
