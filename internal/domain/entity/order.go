package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order and payment statuses.
const (
	StatusPending   = "PENDING"
	StatusComplete  = "COMPLETE"
	StatusCancelled = "CANCELLED"
)

// Order is a completed sale. Lines are immutable snapshots taken at creation
// time; only the status pair and TotalAmount change afterwards (cancel,
// retrieve). Amounts are caller-supplied and stored as-is.
type Order struct {
	ID                 string
	PurchasedID        string // human purchase code, PO-nnnnn
	Lines              []OrderLine
	Amount             decimal.Decimal // subtotal before discount and VAT
	Discount           decimal.Decimal // discount percentage
	CalculatedDiscount decimal.Decimal // discount value
	VATAmount          decimal.Decimal
	TotalAmount        decimal.Decimal
	PaidAmount         decimal.Decimal
	ChangeAmount       decimal.Decimal
	PaymentMethod      string
	OrderStatus        string
	PaymentStatus      string
	Member             *MemberSnapshot // nil when no membership was attached
	CreatedBy          string
	UpdatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrderLine is a snapshot of a product at time of purchase, not a live
// reference: later product changes never alter past orders.
type OrderLine struct {
	ProductID      string
	Name           string
	Price          decimal.Decimal
	Quantity       int
	IsDiscountable bool
}

// MemberSnapshot copies the membership fields embedded in an order at
// creation time, intentionally decoupled from the live membership record.
type MemberSnapshot struct {
	Type        string
	PhoneNumber string
	Points      decimal.Decimal
}
