package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest one line of a new order. The field name `_id` is kept from
// the legacy wire format.
type OrderItemRequest struct {
	ProductID string `json:"_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest payload for POST /order/create. Monetary aggregates are
// computed by the caller and stored as-is.
type CreateOrderRequest struct {
	Items              []OrderItemRequest `json:"items"`
	PhoneNumber        string             `json:"phoneNumber,omitempty"`
	Amount             decimal.Decimal    `json:"amount"`
	Discount           decimal.Decimal    `json:"discount"`
	CalculatedDiscount decimal.Decimal    `json:"calculatedDiscount"`
	VATAmount          decimal.Decimal    `json:"vatAmount"`
	TotalAmount        decimal.Decimal    `json:"totalAmount"`
	PaidAmount         decimal.Decimal    `json:"paidAmount"`
	ChangeAmount       decimal.Decimal    `json:"changeAmount"`
	PaymentMethod      string             `json:"paymentMethod"`
}

// UpdateOrderRequest final total for the retrieve transition.
type UpdateOrderRequest struct {
	Total decimal.Decimal `json:"total"`
}

// OrderLineResponse snapshot of a purchased product.
type OrderLineResponse struct {
	ProductID      string          `json:"productId"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	IsDiscountable bool            `json:"isDiscountable"`
}

// MemberSnapshotResponse membership fields frozen at order time.
type MemberSnapshotResponse struct {
	Type        string          `json:"type"`
	PhoneNumber string          `json:"phoneNumber"`
	Points      decimal.Decimal `json:"points"`
}

// OrderResponse order as returned by the API.
type OrderResponse struct {
	ID                 string                  `json:"id"`
	PurchasedID        string                  `json:"purchasedId"`
	Lines              []OrderLineResponse     `json:"orders"`
	Amount             decimal.Decimal         `json:"amount"`
	Discount           decimal.Decimal         `json:"discount"`
	CalculatedDiscount decimal.Decimal         `json:"calculatedDiscount"`
	VATAmount          decimal.Decimal         `json:"vatAmount"`
	TotalAmount        decimal.Decimal         `json:"totalAmount"`
	PaidAmount         decimal.Decimal         `json:"paidAmount"`
	ChangeAmount       decimal.Decimal         `json:"changeAmount"`
	PaymentMethod      string                  `json:"paymentMethod"`
	OrderStatus        string                  `json:"orderStatus"`
	PaymentStatus      string                  `json:"paymentStatus"`
	Member             *MemberSnapshotResponse `json:"member,omitempty"`
	CreatedBy          string                  `json:"createdBy"`
	UpdatedBy          string                  `json:"updatedBy"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
}

// OrderListResponse orders plus their count and summed total.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlySaleResponse one bucket of the per-month sales aggregation; Month is
// a short English month name.
type MonthlySaleResponse struct {
	Month string          `json:"month"`
	Sale  decimal.Decimal `json:"sale"`
}
