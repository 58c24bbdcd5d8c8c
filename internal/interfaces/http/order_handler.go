package http

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/application/sales"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
	domsales "github.com/iamungmonita/plants-box-api/internal/domain/sales"
)

// OrderHandler handles order requests (protected).
type OrderHandler struct {
	uc *sales.OrderUseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *sales.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create places an order.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.PlaceOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List returns orders filtered by purchase code and date range.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	f, err := orderFilterFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Today returns the orders of one day; the date parameter is required.
func (h *OrderHandler) Today(c *fiber.Ctx) error {
	out, err := h.uc.Today(c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByRange returns the orders of a named range (weekly, monthly, yearly).
func (h *OrderHandler) ByRange(c *fiber.Ctx) error {
	out, err := h.uc.ByRange(c.Query("range"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlySales aggregates total sales per month.
func (h *OrderHandler) MonthlySales(c *fiber.Ctx) error {
	out, err := h.uc.MonthlySales()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel zeroes the total, marks both statuses CANCELLED and restores stock.
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "order cancelled"})
}

// MarkRetrieved sets the final total and flips both statuses to COMPLETE.
func (h *OrderHandler) MarkRetrieved(c *fiber.Ctx) error {
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.uc.MarkRetrieved(c.Params("id"), GetUserID(c), in.Total); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "order updated"})
}

// DownloadExcel streams the filtered orders as an .xlsx workbook. The temp
// file is removed once sent.
func (h *OrderHandler) DownloadExcel(c *fiber.Ctx) error {
	f, err := orderFilterFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	path, err := h.uc.Export(f)
	if err != nil {
		return respondError(c, err)
	}
	defer func() { _ = os.Remove(path) }()
	return c.Download(path, filepath.Base(path))
}

// orderFilterFromQuery reads purchasedId/start/end query params. Dates are
// day-bounded inclusively.
func orderFilterFromQuery(c *fiber.Ctx) (repository.OrderFilter, error) {
	f := repository.OrderFilter{PurchasedID: c.Query("purchasedId")}
	if s := c.Query("start"); s != "" {
		day, err := time.Parse("2006-01-02", s)
		if err != nil {
			return f, fmt.Errorf("%w: invalid start date", domain.ErrBadRequest)
		}
		start := domsales.DayStart(day)
		f.Start = &start
	}
	if s := c.Query("end"); s != "" {
		day, err := time.Parse("2006-01-02", s)
		if err != nil {
			return f, fmt.Errorf("%w: invalid end date", domain.ErrBadRequest)
		}
		end := domsales.DayEnd(day)
		f.End = &end
	}
	return f, nil
}
