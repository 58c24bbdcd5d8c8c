package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, price, imported_price, barcode, category, pictures, is_active, is_discountable, stock, sold_qty, created_by, updated_by, created_at, updated_at`

// ProductRepo implements the ProductRepository port over PostgreSQL (usable
// with pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter for products. Pass pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Price, p.ImportedPrice, p.Barcode, p.Category, p.Pictures,
		p.IsActive, p.IsDiscountable, p.Stock, p.SoldQty,
		p.CreatedBy, p.UpdatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate fetches a product by ID holding a row lock. Only useful on
// a tx-bound repository.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &p.Price, &p.ImportedPrice, &p.Barcode, &p.Category, &p.Pictures,
		&p.IsActive, &p.IsDiscountable, &p.Stock, &p.SoldQty,
		&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List returns products matching the filter, newest first.
func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + productColumns + ` FROM products`)
	var conds []string
	var args []any
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR barcode ILIKE $%d)", n, n))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListBestSelling returns active products ordered by units sold, descending.
func (r *ProductRepo) ListBestSelling() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE is_active = true AND sold_qty > 0
		ORDER BY sold_qty DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list best selling: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Update rewrites the mutable columns of a product. Stock and sold_qty are
// included: callers doing sale movements must go through AdjustStock instead.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, imported_price = $4, barcode = $5, category = $6,
			pictures = $7, is_active = $8, is_discountable = $9, stock = $10,
			updated_by = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Price, p.ImportedPrice, p.Barcode, p.Category,
		p.Pictures, p.IsActive, p.IsDiscountable, p.Stock,
		p.UpdatedBy, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AdjustStock applies both deltas in one conditional update. The WHERE guard
// refuses any adjustment that would take stock below zero, so a concurrent
// sale can never overdraw.
func (r *ProductRepo) AdjustStock(id string, stockDelta, soldDelta int) error {
	query := `
		UPDATE products
		SET stock = stock + $2, sold_qty = sold_qty + $3, updated_at = now()
		WHERE id = $1 AND stock + $2 >= 0`
	cmd, err := r.q.Exec(context.Background(), query, id, stockDelta, soldDelta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		p, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		return domain.ErrInsufficientStock
	}
	return nil
}

// AddStockUpdate appends one entry to a product's stock adjustment log.
func (r *ProductRepo) AddStockUpdate(u *entity.StockUpdate) error {
	query := `
		INSERT INTO product_stock_updates (id, product_id, update_number, old_stock, added_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.ProductID, u.UpdateNumber, u.OldStock, u.AddedStock, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock update: %w", err)
	}
	return nil
}

// ListStockUpdates returns the adjustment log of one product, oldest first.
func (r *ProductRepo) ListStockUpdates(productID string) ([]*entity.StockUpdate, error) {
	query := `
		SELECT id, product_id, update_number, old_stock, added_stock, created_at
		FROM product_stock_updates WHERE product_id = $1
		ORDER BY update_number ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock updates: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockUpdate
	for rows.Next() {
		var u entity.StockUpdate
		if err := rows.Scan(&u.ID, &u.ProductID, &u.UpdateNumber, &u.OldStock, &u.AddedStock, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock update: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Price, &p.ImportedPrice, &p.Barcode, &p.Category, &p.Pictures,
			&p.IsActive, &p.IsDiscountable, &p.Stock, &p.SoldQty,
			&p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
