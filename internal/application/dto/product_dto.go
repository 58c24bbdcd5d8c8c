package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest payload for POST /product/create. All fields except
// pictures are required.
type CreateProductRequest struct {
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	ImportedPrice  decimal.Decimal `json:"importedPrice"`
	Stock          int             `json:"stock"`
	Category       string          `json:"category"`
	Barcode        string          `json:"barcode"`
	Pictures       string          `json:"pictures,omitempty"`
	IsActive       bool            `json:"isActive"`
	IsDiscountable bool            `json:"isDiscountable"`
}

// UpdateProductDetailsRequest partial product update. A stock value higher
// than the current one appends an entry to the stock adjustment log.
type UpdateProductDetailsRequest struct {
	Name           *string          `json:"name"`
	Price          *decimal.Decimal `json:"price"`
	ImportedPrice  *decimal.Decimal `json:"importedPrice"`
	Stock          *int             `json:"stock"`
	Category       *string          `json:"category"`
	Barcode        *string          `json:"barcode"`
	Pictures       *string          `json:"pictures"`
	IsActive       *bool            `json:"isActive"`
	IsDiscountable *bool            `json:"isDiscountable"`
}

// AdjustQuantityRequest body for the consume/restore stock endpoints.
type AdjustQuantityRequest struct {
	Qty int `json:"qty"`
}

// ProductResponse product as returned by the API.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	ImportedPrice  decimal.Decimal `json:"importedPrice"`
	Barcode        string          `json:"barcode"`
	Category       string          `json:"category"`
	Pictures       string          `json:"pictures,omitempty"`
	IsActive       bool            `json:"isActive"`
	IsDiscountable bool            `json:"isDiscountable"`
	Stock          int             `json:"stock"`
	SoldQty        int             `json:"soldQty"`
	CreatedBy      string          `json:"createdBy"`
	UpdatedBy      string          `json:"updatedBy"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// StockUpdateResponse one stock adjustment log entry.
type StockUpdateResponse struct {
	UpdateNumber int       `json:"updateNumber"`
	OldStock     int       `json:"oldStock"`
	AddedStock   int       `json:"addedStock"`
	CreatedAt    time.Time `json:"createdAt"`
}
