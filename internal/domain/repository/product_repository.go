package repository

import "github.com/iamungmonita/plants-box-api/internal/domain/entity"

// ProductFilter narrows product listings. Search matches name or barcode
// case-insensitively as a substring; Category is an exact match.
type ProductFilter struct {
	Search   string
	Category string
}

// ProductRepository port for product persistence. Implementations return
// (nil, nil) when a record does not exist.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate locks the product row until the surrounding
	// transaction ends. Only meaningful on a tx-bound repository.
	GetByIDForUpdate(id string) (*entity.Product, error)
	List(f ProductFilter) ([]*entity.Product, error)
	ListBestSelling() ([]*entity.Product, error)
	Update(p *entity.Product) error
	// AdjustStock applies stock += stockDelta, sold_qty += soldDelta in one
	// conditional update that refuses to take stock below zero
	// (ErrInsufficientStock).
	AdjustStock(id string, stockDelta, soldDelta int) error
	AddStockUpdate(u *entity.StockUpdate) error
	ListStockUpdates(productID string) ([]*entity.StockUpdate, error)
}
