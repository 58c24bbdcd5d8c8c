package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
	domsales "github.com/iamungmonita/plants-box-api/internal/domain/sales"
)

// OrderUseCase order placement, status transitions, reporting and export.
type OrderUseCase struct {
	txRunner       TxRunner
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	membershipRepo repository.MembershipRepository
	exporter       OrderExporter
	now            func() time.Time
}

// NewOrderUseCase builds the usecase. orderRepo and productRepo are pool-bound
// (read paths); writes go through txRunner.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	membershipRepo repository.MembershipRepository,
	exporter OrderExporter,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:       txRunner,
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		membershipRepo: membershipRepo,
		exporter:       exporter,
		now:            time.Now,
	}
}

// List returns orders matching the filter together with their count and the
// sum of their totals.
func (uc *OrderUseCase) List(f repository.OrderFilter) (*dto.OrderListResponse, error) {
	orders, err := uc.orderRepo.List(f)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(orders), nil
}

// Today returns the orders of a single day. The date parameter is required.
func (uc *OrderUseCase) Today(date string) (*dto.OrderListResponse, error) {
	if date == "" {
		return nil, fmt.Errorf("%w: date", domain.ErrMissingParam)
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format", domain.ErrBadRequest)
	}
	start := domsales.DayStart(day)
	end := domsales.DayEnd(day)
	return uc.List(repository.OrderFilter{Start: &start, End: &end})
}

// ByRange returns the orders of a named range: weekly, monthly or yearly.
func (uc *OrderUseCase) ByRange(name string) (*dto.OrderListResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: range", domain.ErrMissingParam)
	}
	start, end, ok := domsales.RangeBounds(name, uc.now())
	if !ok {
		return nil, fmt.Errorf("%w: invalid range parameter. Use weekly, monthly, or yearly", domain.ErrBadRequest)
	}
	return uc.List(repository.OrderFilter{Start: &start, End: &end})
}

// MonthlySales aggregates total sales per month, oldest first.
func (uc *OrderUseCase) MonthlySales() ([]dto.MonthlySaleResponse, error) {
	buckets, err := uc.orderRepo.MonthlySales()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlySaleResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.MonthlySaleResponse{Month: shortMonth(b.Month), Sale: b.Total})
	}
	return out, nil
}

// Cancel zeroes the order total, marks both statuses CANCELLED and restores
// the stock of every line, all in one transaction. Cancelling an already
// cancelled order is a no-op, so stock is never restored twice.
func (uc *OrderUseCase) Cancel(ctx context.Context, id, principalID string) error {
	return uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		order, err := orderRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("%w: order does not exist", domain.ErrNotFound)
		}
		if order.OrderStatus == entity.StatusCancelled {
			return nil
		}
		for _, line := range order.Lines {
			if err := productRepo.AdjustStock(line.ProductID, line.Quantity, -line.Quantity); err != nil {
				return err
			}
		}
		return orderRepo.UpdateStatus(id, decimal.Zero, entity.StatusCancelled, entity.StatusCancelled, principalID)
	})
}

// MarkRetrieved sets the caller-supplied final total and flips both statuses
// to COMPLETE. The total is trusted as-is; no recomputation happens here.
func (uc *OrderUseCase) MarkRetrieved(id, principalID string, total decimal.Decimal) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("%w: order does not exist", domain.ErrNotFound)
	}
	return uc.orderRepo.UpdateStatus(id, total, entity.StatusComplete, entity.StatusComplete, principalID)
}

// Export writes the filtered orders to a spreadsheet and returns the file
// path. The caller removes the file once it has been sent.
func (uc *OrderUseCase) Export(f repository.OrderFilter) (string, error) {
	orders, err := uc.orderRepo.List(f)
	if err != nil {
		return "", err
	}
	return uc.exporter.Export(orders)
}

// shortMonth renders a YYYY-MM bucket as a short English month name.
func shortMonth(yyyymm string) string {
	t, err := time.Parse("2006-01", yyyymm)
	if err != nil {
		return yyyymm
	}
	return t.Format("Jan")
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID:      l.ProductID,
			Name:           l.Name,
			Price:          l.Price,
			Quantity:       l.Quantity,
			IsDiscountable: l.IsDiscountable,
		})
	}
	var member *dto.MemberSnapshotResponse
	if o.Member != nil {
		member = &dto.MemberSnapshotResponse{
			Type:        o.Member.Type,
			PhoneNumber: o.Member.PhoneNumber,
			Points:      o.Member.Points,
		}
	}
	return &dto.OrderResponse{
		ID:                 o.ID,
		PurchasedID:        o.PurchasedID,
		Lines:              lines,
		Amount:             o.Amount,
		Discount:           o.Discount,
		CalculatedDiscount: o.CalculatedDiscount,
		VATAmount:          o.VATAmount,
		TotalAmount:        o.TotalAmount,
		PaidAmount:         o.PaidAmount,
		ChangeAmount:       o.ChangeAmount,
		PaymentMethod:      o.PaymentMethod,
		OrderStatus:        o.OrderStatus,
		PaymentStatus:      o.PaymentStatus,
		Member:             member,
		CreatedBy:          o.CreatedBy,
		UpdatedBy:          o.UpdatedBy,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func toOrderListResponse(orders []*entity.Order) *dto.OrderListResponse {
	out := &dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Count:  len(orders),
		Amount: decimal.Zero,
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, *toOrderResponse(o))
		out.Amount = out.Amount.Add(o.TotalAmount)
	}
	return out
}
