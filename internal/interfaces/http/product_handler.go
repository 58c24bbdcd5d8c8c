package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamungmonita/plants-box-api/internal/application/catalog"
	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

// ProductHandler handles catalog requests (protected).
type ProductHandler struct {
	uc *catalog.ProductUseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create adds a product to the catalog.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns products filtered by search text and category.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(repository.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// BestSelling returns active products ordered by units sold.
func (h *ProductHandler) BestSelling(c *fiber.Ctx) error {
	out, err := h.uc.BestSelling()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID returns one product.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateDetails applies a partial product update; raising stock appends to
// the adjustment log.
func (h *ProductHandler) UpdateDetails(c *fiber.Ctx) error {
	var in dto.UpdateProductDetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.UpdateDetails(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ConsumeStock decrements stock and increments sold_qty by qty.
func (h *ProductHandler) ConsumeStock(c *fiber.Ctx) error {
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.ConsumeStock(GetUserID(c), c.Params("id"), in.Qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RestoreStock reverses a consumption: stock += qty, sold_qty -= qty.
func (h *ProductHandler) RestoreStock(c *fiber.Ctx) error {
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.RestoreStock(GetUserID(c), c.Params("id"), in.Qty)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockUpdates returns the stock adjustment log of one product.
func (h *ProductHandler) StockUpdates(c *fiber.Ctx) error {
	out, err := h.uc.StockUpdates(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
