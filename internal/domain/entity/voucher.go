package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher is a discount coupon with a validity window. IsExpired is computed
// at creation time: true when now falls outside [ValidFrom, ValidTo].
type Voucher struct {
	ID        string
	Barcode   string
	Discount  decimal.Decimal
	ValidFrom time.Time
	ValidTo   time.Time
	IsExpired bool
	IsActive  bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether now falls outside the voucher's validity window.
func (v *Voucher) Expired(now time.Time) bool {
	return now.Before(v.ValidFrom) || now.After(v.ValidTo)
}
