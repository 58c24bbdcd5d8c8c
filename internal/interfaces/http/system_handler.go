package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/application/system"
)

// SystemHandler handles roles, expenses and vouchers (protected).
type SystemHandler struct {
	uc *system.SystemUseCase
}

// NewSystemHandler builds the handler.
func NewSystemHandler(uc *system.SystemUseCase) *SystemHandler {
	return &SystemHandler{uc: uc}
}

// CreateRole adds a role.
func (h *SystemHandler) CreateRole(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.CreateRole(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Roles lists every role.
func (h *SystemHandler) Roles(c *fiber.Ctx) error {
	out, err := h.uc.Roles()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RoleByID returns one role.
func (h *SystemHandler) RoleByID(c *fiber.Ctx) error {
	out, err := h.uc.RoleByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateRole applies a partial role update.
func (h *SystemHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.UpdateRole(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateExpense records a spending entry.
func (h *SystemHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.CreateExpense(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Expenses lists every expense.
func (h *SystemHandler) Expenses(c *fiber.Ctx) error {
	out, err := h.uc.Expenses()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyExpenses aggregates expenses per month.
func (h *SystemHandler) MonthlyExpenses(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyExpenses()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateVoucher adds a discount voucher.
func (h *SystemHandler) CreateVoucher(c *fiber.Ctx) error {
	var in dto.CreateVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.CreateVoucher(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Vouchers lists vouchers, optionally filtered by barcode substring.
func (h *SystemHandler) Vouchers(c *fiber.Ctx) error {
	out, err := h.uc.Vouchers(c.Query("barcode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VoucherByID returns one voucher.
func (h *SystemHandler) VoucherByID(c *fiber.Ctx) error {
	out, err := h.uc.VoucherByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RedeemVoucher deactivates the voucher with the given barcode.
func (h *SystemHandler) RedeemVoucher(c *fiber.Ctx) error {
	out, err := h.uc.RedeemVoucherByBarcode(c.Params("barcode"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateVoucher applies a partial voucher update by ID.
func (h *SystemHandler) UpdateVoucher(c *fiber.Ctx) error {
	var in dto.UpdateVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.UpdateVoucher(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
