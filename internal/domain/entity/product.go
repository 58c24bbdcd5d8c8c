package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item sold at the counter. Stock and SoldQty move in
// lockstep: every sale decrements Stock and increments SoldQty by the same
// quantity, and a cancellation reverses both. Stock never goes below zero
// after a commit.
type Product struct {
	ID             string
	Name           string
	Price          decimal.Decimal
	ImportedPrice  decimal.Decimal // supplier cost
	Barcode        string          // unique
	Category       string
	Pictures       string // path under the uploads dir, empty when none
	IsActive       bool
	IsDiscountable bool
	Stock          int
	SoldQty        int
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StockUpdate is one entry of a product's append-only stock adjustment log.
// Written only when a details update raises the stock level.
type StockUpdate struct {
	ID           string
	ProductID    string
	UpdateNumber int // per-product sequence, starts at 1
	OldStock     int
	AddedStock   int
	CreatedAt    time.Time
}
