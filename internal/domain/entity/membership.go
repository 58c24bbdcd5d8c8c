package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Membership is a customer loyalty record keyed by phone number. Points hold
// only the current balance (no ledger); Invoices is replaced wholesale on
// every point update, never appended to.
type Membership struct {
	ID          string
	PhoneNumber string // unique
	Type        string // tier
	IsActive    bool
	Points      decimal.Decimal // rounded to 2 places
	Invoices    []string
	CreatedBy   string
	UpdatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
