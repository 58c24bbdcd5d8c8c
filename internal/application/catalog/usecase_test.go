package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

const testPrincipal = "admin-1"

type fakeProductRepo struct {
	products map[string]*entity.Product
	barcodes map[string]string // barcode -> product id
	stockLog map[string][]*entity.StockUpdate
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products: make(map[string]*entity.Product),
		barcodes: make(map[string]string),
		stockLog: make(map[string][]*entity.StockUpdate),
	}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
		r.barcodes[p.Barcode] = p.ID
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if owner, ok := r.barcodes[p.Barcode]; ok && owner != p.ID {
		return domain.ErrDuplicate
	}
	cp := *p
	r.products[p.ID] = &cp
	r.barcodes[p.Barcode] = p.ID
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListBestSelling() ([]*entity.Product, error) {
	return r.List(repository.ProductFilter{})
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if owner, ok := r.barcodes[p.Barcode]; ok && owner != p.ID {
		return domain.ErrDuplicate
	}
	old := r.products[p.ID]
	if old != nil && old.Barcode != p.Barcode {
		delete(r.barcodes, old.Barcode)
	}
	cp := *p
	r.products[p.ID] = &cp
	r.barcodes[p.Barcode] = p.ID
	return nil
}

func (r *fakeProductRepo) AdjustStock(id string, stockDelta, soldDelta int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock+stockDelta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock += stockDelta
	p.SoldQty += soldDelta
	return nil
}

func (r *fakeProductRepo) AddStockUpdate(u *entity.StockUpdate) error {
	cp := *u
	r.stockLog[u.ProductID] = append(r.stockLog[u.ProductID], &cp)
	return nil
}

func (r *fakeProductRepo) ListStockUpdates(productID string) ([]*entity.StockUpdate, error) {
	return r.stockLog[productID], nil
}

func activeProduct(id string, stock, sold int) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     "Monstera",
		Price:    decimal.RequireFromString("2.50"),
		Barcode:  "BC-" + id,
		Category: "indoor",
		IsActive: true,
		Stock:    stock,
		SoldQty:  sold,
	}
}

func TestCreate_RequiresFieldsAndPositivePrices(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(testPrincipal, dto.CreateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = uc.Create(testPrincipal, dto.CreateProductRequest{
		Name:     "Monstera",
		Category: "indoor",
		Barcode:  "BC-1",
		Price:    decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestCreate_DuplicateBarcode(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo(activeProduct("p1", 5, 0)))

	_, err := uc.Create(testPrincipal, dto.CreateProductRequest{
		Name:          "Another",
		Category:      "indoor",
		Barcode:       "BC-p1",
		Price:         decimal.RequireFromString("3.00"),
		ImportedPrice: decimal.RequireFromString("1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestConsumeStock_DecrementsAndCounts(t *testing.T) {
	repo := newFakeProductRepo(activeProduct("p1", 10, 2))
	uc := NewProductUseCase(repo)

	out, err := uc.ConsumeStock(testPrincipal, "p1", 4)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Stock)
	assert.Equal(t, 6, out.SoldQty)
}

func TestConsumeStock_RejectsOverdraw(t *testing.T) {
	repo := newFakeProductRepo(activeProduct("p1", 3, 0))
	uc := NewProductUseCase(repo)

	_, err := uc.ConsumeStock(testPrincipal, "p1", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "Available: 3")
	assert.Contains(t, err.Error(), "Requested: 5")

	p, _ := repo.GetByID("p1")
	assert.Equal(t, 3, p.Stock)
}

func TestConsumeStock_ExactBoundary(t *testing.T) {
	repo := newFakeProductRepo(activeProduct("p1", 3, 0))
	uc := NewProductUseCase(repo)

	out, err := uc.ConsumeStock(testPrincipal, "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)
	assert.Equal(t, 3, out.SoldQty)
}

func TestRestoreStock_RoundTrip(t *testing.T) {
	repo := newFakeProductRepo(activeProduct("p1", 10, 0))
	uc := NewProductUseCase(repo)

	_, err := uc.ConsumeStock(testPrincipal, "p1", 4)
	require.NoError(t, err)
	out, err := uc.RestoreStock(testPrincipal, "p1", 4)
	require.NoError(t, err)

	assert.Equal(t, 10, out.Stock)
	assert.Equal(t, 0, out.SoldQty)
}

// Restoration has no upper bound: restoring more than was ever sold drives
// soldQty negative. Kept from the legacy contract.
func TestRestoreStock_Uncapped(t *testing.T) {
	repo := newFakeProductRepo(activeProduct("p1", 10, 2))
	uc := NewProductUseCase(repo)

	out, err := uc.RestoreStock(testPrincipal, "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 15, out.Stock)
	assert.Equal(t, -3, out.SoldQty)
}

func TestUpdateDetails_StockRaiseAppendsLog(t *testing.T) {
	repo := newFakeProductRepo(activeProduct("p1", 5, 0))
	uc := NewProductUseCase(repo)

	newStock := 12
	_, err := uc.UpdateDetails(testPrincipal, "p1", dto.UpdateProductDetailsRequest{Stock: &newStock})
	require.NoError(t, err)

	log, err := uc.StockUpdates("p1")
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, 1, log[0].UpdateNumber)
	assert.Equal(t, 5, log[0].OldStock)
	assert.Equal(t, 7, log[0].AddedStock)

	// A second raise continues the per-product sequence.
	newStock = 20
	_, err = uc.UpdateDetails(testPrincipal, "p1", dto.UpdateProductDetailsRequest{Stock: &newStock})
	require.NoError(t, err)

	log, err = uc.StockUpdates("p1")
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, 2, log[1].UpdateNumber)
	assert.Equal(t, 12, log[1].OldStock)
	assert.Equal(t, 8, log[1].AddedStock)
}

func TestUpdateDetails_StockLowerDoesNotLog(t *testing.T) {
	repo := newFakeProductRepo(activeProduct("p1", 5, 0))
	uc := NewProductUseCase(repo)

	newStock := 2
	out, err := uc.UpdateDetails(testPrincipal, "p1", dto.UpdateProductDetailsRequest{Stock: &newStock})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Stock)

	log, err := uc.StockUpdates("p1")
	require.NoError(t, err)
	assert.Empty(t, log)
}

func TestUpdateDetails_PartialFields(t *testing.T) {
	repo := newFakeProductRepo(activeProduct("p1", 5, 0))
	uc := NewProductUseCase(repo)

	name := "Monstera Deliciosa"
	price := decimal.RequireFromString("4.75")
	out, err := uc.UpdateDetails(testPrincipal, "p1", dto.UpdateProductDetailsRequest{
		Name:  &name,
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Monstera Deliciosa", out.Name)
	assert.True(t, out.Price.Equal(price))
	assert.Equal(t, "indoor", out.Category, "untouched fields keep their value")
	assert.Equal(t, testPrincipal, out.UpdatedBy)
}

func TestUpdateDetails_UnknownProduct(t *testing.T) {
	uc := NewProductUseCase(newFakeProductRepo())

	_, err := uc.UpdateDetails(testPrincipal, "missing", dto.UpdateProductDetailsRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
