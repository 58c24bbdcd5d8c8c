package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

// ProductUseCase product catalog management and standalone stock adjustment.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase builds the usecase.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create validates and persists a new product. A duplicate barcode surfaces
// as a duplicated-param failure.
func (uc *ProductUseCase) Create(principalID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" || in.Barcode == "" {
		return nil, fmt.Errorf("%w: missing required fields", domain.ErrBadRequest)
	}
	if !in.Price.GreaterThan(decimal.Zero) || !in.ImportedPrice.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price and importedPrice must be positive", domain.ErrBadRequest)
	}
	if in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", domain.ErrBadRequest)
	}
	now := time.Now()
	p := &entity.Product{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Price:          in.Price,
		ImportedPrice:  in.ImportedPrice,
		Barcode:        in.Barcode,
		Category:       in.Category,
		Pictures:       in.Pictures,
		IsActive:       in.IsActive,
		IsDiscountable: in.IsDiscountable,
		Stock:          in.Stock,
		SoldQty:        0,
		CreatedBy:      principalID,
		UpdatedBy:      principalID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.productRepo.Create(p); err != nil {
		if err == domain.ErrDuplicate {
			return nil, fmt.Errorf("%w: barcode", domain.ErrDuplicate)
		}
		return nil, err
	}
	return toProductResponse(p), nil
}

// List returns products matching the optional search and category filters.
func (uc *ProductUseCase) List(f repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(f)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// BestSelling returns all products ordered by sold quantity, highest first.
func (uc *ProductUseCase) BestSelling() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListBestSelling()
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetByID returns one product.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product does not exist", domain.ErrNotFound)
	}
	return toProductResponse(p), nil
}

// ConsumeStock takes qty units out of stock for a sale: stock -= qty,
// soldQty += qty. Rejects quantities above the current stock level.
func (uc *ProductUseCase) ConsumeStock(principalID, id string, qty int) (*dto.ProductResponse, error) {
	if qty < 0 {
		return nil, fmt.Errorf("%w: invalid stock value", domain.ErrBadRequest)
	}
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product does not exist", domain.ErrNotFound)
	}
	if p.Stock < qty {
		return nil, fmt.Errorf("%w: not enough stock for product %s. Available: %d, Requested: %d",
			domain.ErrBadRequest, p.Name, p.Stock, qty)
	}
	if err := uc.productRepo.AdjustStock(id, -qty, qty); err != nil {
		if err == domain.ErrInsufficientStock {
			return nil, fmt.Errorf("%w: not enough stock for product %s. Available: %d, Requested: %d",
				domain.ErrBadRequest, p.Name, p.Stock, qty)
		}
		return nil, err
	}
	return uc.GetByID(id)
}

// RestoreStock reverses a sale after a cancellation: stock += qty,
// soldQty -= qty. There is no upper bound on restoration; restoring more than
// was ever sold is possible (kept from the legacy contract).
func (uc *ProductUseCase) RestoreStock(principalID, id string, qty int) (*dto.ProductResponse, error) {
	if qty < 0 {
		return nil, fmt.Errorf("%w: invalid stock value", domain.ErrBadRequest)
	}
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product does not exist", domain.ErrNotFound)
	}
	if err := uc.productRepo.AdjustStock(id, qty, -qty); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// UpdateDetails applies a partial product update. When the stock level is
// raised, an entry is appended to the product's stock adjustment log with the
// prior stock and the delta.
func (uc *ProductUseCase) UpdateDetails(principalID, id string, in dto.UpdateProductDetailsRequest) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product does not exist", domain.ErrNotFound)
	}

	var stockUpdate *entity.StockUpdate
	if in.Stock != nil && *in.Stock != p.Stock {
		if *in.Stock < 0 {
			return nil, fmt.Errorf("%w: stock cannot be negative", domain.ErrBadRequest)
		}
		if *in.Stock > p.Stock {
			existing, err := uc.productRepo.ListStockUpdates(id)
			if err != nil {
				return nil, err
			}
			stockUpdate = &entity.StockUpdate{
				ID:           uuid.New().String(),
				ProductID:    id,
				UpdateNumber: len(existing) + 1,
				OldStock:     p.Stock,
				AddedStock:   *in.Stock - p.Stock,
				CreatedAt:    time.Now(),
			}
		}
		p.Stock = *in.Stock
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.ImportedPrice != nil {
		p.ImportedPrice = *in.ImportedPrice
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.Pictures != nil {
		p.Pictures = *in.Pictures
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.IsDiscountable != nil {
		p.IsDiscountable = *in.IsDiscountable
	}
	p.UpdatedBy = principalID
	p.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(p); err != nil {
		if err == domain.ErrDuplicate {
			return nil, fmt.Errorf("%w: barcode", domain.ErrDuplicate)
		}
		return nil, err
	}
	if stockUpdate != nil {
		if err := uc.productRepo.AddStockUpdate(stockUpdate); err != nil {
			return nil, err
		}
	}
	return toProductResponse(p), nil
}

// StockUpdates returns the append-only adjustment log for one product.
func (uc *ProductUseCase) StockUpdates(id string) ([]dto.StockUpdateResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product does not exist", domain.ErrNotFound)
	}
	updates, err := uc.productRepo.ListStockUpdates(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockUpdateResponse, 0, len(updates))
	for _, u := range updates {
		out = append(out, dto.StockUpdateResponse{
			UpdateNumber: u.UpdateNumber,
			OldStock:     u.OldStock,
			AddedStock:   u.AddedStock,
			CreatedAt:    u.CreatedAt,
		})
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		ImportedPrice:  p.ImportedPrice,
		Barcode:        p.Barcode,
		Category:       p.Category,
		Pictures:       p.Pictures,
		IsActive:       p.IsActive,
		IsDiscountable: p.IsDiscountable,
		Stock:          p.Stock,
		SoldQty:        p.SoldQty,
		CreatedBy:      p.CreatedBy,
		UpdatedBy:      p.UpdatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}
