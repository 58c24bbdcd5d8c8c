package sales

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
	domsales "github.com/iamungmonita/plants-box-api/internal/domain/sales"
)

// PlaceOrder validates the line items, optionally resolves a membership
// snapshot, then creates the order and decrements stock in one transaction.
//
// Validation is a dry-run pass before any write: an inactive product or an
// oversized quantity fails the whole request with no side effects. Inside the
// transaction every product row is locked and re-checked, so two concurrent
// orders can never oversell the same product; the order insert and all stock
// decrements commit or roll back together.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, principalID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: no order has been placed", domain.ErrBadRequest)
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: every item needs a product id and a positive quantity", domain.ErrBadRequest)
		}
		p, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || !p.IsActive {
			return nil, fmt.Errorf("%w: product with ID: %s not found", domain.ErrNotFound, item.ProductID)
		}
		if item.Quantity > p.Stock {
			return nil, fmt.Errorf("%w: not enough stock for product %s. Available: %d, Requested: %d",
				domain.ErrBadRequest, p.Name, p.Stock, item.Quantity)
		}
	}

	var member *entity.MemberSnapshot
	if in.PhoneNumber != "" {
		m, err := uc.membershipRepo.GetActiveByPhone(in.PhoneNumber)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: no membership found", domain.ErrNotFound)
		}
		member = &entity.MemberSnapshot{
			Type:        m.Type,
			PhoneNumber: m.PhoneNumber,
			Points:      m.Points,
		}
	}

	now := uc.now()
	order := &entity.Order{
		ID:                 uuid.New().String(),
		Amount:             in.Amount,
		Discount:           in.Discount,
		CalculatedDiscount: in.CalculatedDiscount,
		VATAmount:          in.VATAmount,
		TotalAmount:        in.TotalAmount,
		PaidAmount:         in.PaidAmount,
		ChangeAmount:       in.ChangeAmount,
		PaymentMethod:      in.PaymentMethod,
		OrderStatus:        entity.StatusComplete,
		PaymentStatus:      entity.StatusComplete,
		Member:             member,
		CreatedBy:          principalID,
		UpdatedBy:          principalID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := uc.txRunner.Run(ctx, func(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) error {
		order.Lines = order.Lines[:0]
		for _, item := range in.Items {
			p, err := productRepo.GetByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if p == nil || !p.IsActive {
				return fmt.Errorf("%w: product with ID: %s not found", domain.ErrNotFound, item.ProductID)
			}
			if item.Quantity > p.Stock {
				return fmt.Errorf("%w: not enough stock for product %s. Available: %d, Requested: %d",
					domain.ErrBadRequest, p.Name, p.Stock, item.Quantity)
			}
			if err := productRepo.AdjustStock(p.ID, -item.Quantity, item.Quantity); err != nil {
				return err
			}
			order.Lines = append(order.Lines, entity.OrderLine{
				ProductID:      p.ID,
				Name:           p.Name,
				Price:          p.Price,
				Quantity:       item.Quantity,
				IsDiscountable: p.IsDiscountable,
			})
		}
		n, err := orderRepo.NextPurchaseNumber()
		if err != nil {
			return err
		}
		order.PurchasedID = domsales.FormatPurchaseCode(n)
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}
