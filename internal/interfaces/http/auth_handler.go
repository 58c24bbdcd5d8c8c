package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamungmonita/plants-box-api/internal/application/auth"
	"github.com/iamungmonita/plants-box-api/internal/application/dto"
)

// AuthHandler handles sign-in and staff account management.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignIn verifies credentials and issues a token (public).
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in dto.SignInRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.SignIn(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SignUp creates a staff account (authenticated).
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.SignUp(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Profile returns the current principal's account.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Users lists every staff account.
func (h *AuthHandler) Users(c *fiber.Ctx) error {
	out, err := h.uc.Users()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UserByID returns one staff account.
func (h *AuthHandler) UserByID(c *fiber.Ctx) error {
	out, err := h.uc.UserByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateUser applies a partial account update.
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.UpdateUser(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AuthorizeDiscount confirms the principal carries the discount capability.
// The capability itself is enforced by RequireCode on the route.
func (h *AuthHandler) AuthorizeDiscount(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "authorized"})
}
