package repository

import "github.com/iamungmonita/plants-box-api/internal/domain/entity"

// ExpenseRepository port for expense persistence.
type ExpenseRepository interface {
	Create(e *entity.Expense) error
	List() ([]*entity.Expense, error)
	// MonthlyTotals sums expense amounts per YYYY-MM bucket, ascending.
	MonthlyTotals() ([]MonthlyAmount, error)
}

// VoucherRepository port for voucher persistence.
type VoucherRepository interface {
	Create(v *entity.Voucher) error
	GetByID(id string) (*entity.Voucher, error)
	// List filters by barcode substring (case-insensitive) when non-empty.
	List(barcode string) ([]*entity.Voucher, error)
	Update(v *entity.Voucher) error
	// DeactivateByBarcode sets is_active=false on the voucher whose barcode
	// matches case-insensitively, returning the updated record.
	DeactivateByBarcode(barcode string) (*entity.Voucher, error)
}
