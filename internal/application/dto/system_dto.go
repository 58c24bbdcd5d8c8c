package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRoleRequest payload for POST /system/create.
type CreateRoleRequest struct {
	Name     string   `json:"name"`
	Codes    []string `json:"codes"`
	Remarks  string   `json:"remarks,omitempty"`
	IsActive *bool    `json:"isActive"`
}

// UpdateRoleRequest partial role update.
type UpdateRoleRequest struct {
	Name     *string   `json:"name"`
	Codes    *[]string `json:"codes"`
	Remarks  *string   `json:"remarks"`
	IsActive *bool     `json:"isActive"`
}

// RoleResponse role as returned by the API.
type RoleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Codes     []string  `json:"codes"`
	Remarks   string    `json:"remarks,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateExpenseRequest payload for POST /system/create-expense.
type CreateExpenseRequest struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Supplier string          `json:"supplier"`
	Remarks  string          `json:"remarks,omitempty"`
	Date     time.Time       `json:"date"`
}

// ExpenseResponse expense as returned by the API.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Supplier  string          `json:"supplier"`
	Remarks   string          `json:"remarks,omitempty"`
	Date      time.Time       `json:"date"`
	CreatedBy string          `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
}

// MonthlyExpenseResponse one bucket of the per-month expense aggregation.
type MonthlyExpenseResponse struct {
	Month   string          `json:"month"`
	Expense decimal.Decimal `json:"expense"`
}

// CreateVoucherRequest payload for POST /system/create-voucher.
type CreateVoucherRequest struct {
	Barcode   string          `json:"barcode"`
	Discount  decimal.Decimal `json:"discount"`
	ValidFrom time.Time       `json:"validFrom"`
	ValidTo   time.Time       `json:"validTo"`
}

// UpdateVoucherRequest partial voucher update.
type UpdateVoucherRequest struct {
	Discount  *decimal.Decimal `json:"discount"`
	ValidFrom *time.Time       `json:"validFrom"`
	ValidTo   *time.Time       `json:"validTo"`
	IsActive  *bool            `json:"isActive"`
}

// VoucherResponse voucher as returned by the API.
type VoucherResponse struct {
	ID        string          `json:"id"`
	Barcode   string          `json:"barcode"`
	Discount  decimal.Decimal `json:"discount"`
	ValidFrom time.Time       `json:"validFrom"`
	ValidTo   time.Time       `json:"validTo"`
	IsExpired bool            `json:"isExpired"`
	IsActive  bool            `json:"isActive"`
	CreatedBy string          `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
}
