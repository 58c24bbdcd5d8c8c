package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a back-office spending record.
type Expense struct {
	ID        string
	Category  string
	Amount    decimal.Decimal
	Supplier  string
	Remarks   string
	Date      time.Time
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
