package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, purchased_id, amount, discount, calculated_discount, vat_amount, total_amount, paid_amount, change_amount, payment_method, order_status, payment_status, member_type, member_phone, member_points, created_by, updated_by, created_at, updated_at`

// OrderRepo implements the OrderRepository port over PostgreSQL (usable with
// pool or tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository builds the persistence adapter for orders. Pass pool or tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserts the order header and all of its lines.
func (r *OrderRepo) Create(o *entity.Order) error {
	ctx := context.Background()
	var memberType, memberPhone *string
	var memberPoints *decimal.Decimal
	if o.Member != nil {
		memberType = &o.Member.Type
		memberPhone = &o.Member.PhoneNumber
		memberPoints = &o.Member.Points
	}
	headerQuery := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, headerQuery,
		o.ID, o.PurchasedID, o.Amount, o.Discount, o.CalculatedDiscount,
		o.VATAmount, o.TotalAmount, o.PaidAmount, o.ChangeAmount,
		o.PaymentMethod, o.OrderStatus, o.PaymentStatus,
		memberType, memberPhone, memberPoints,
		o.CreatedBy, o.UpdatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (order_id, line_no, product_id, name, price, quantity, is_discountable)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, l := range o.Lines {
		if _, err := r.q.Exec(ctx, lineQuery,
			o.ID, i+1, l.ProductID, l.Name, l.Price, l.Quantity, l.IsDiscountable,
		); err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID fetches one order with its lines.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.getOne(query, id)
}

// GetByIDForUpdate fetches one order holding a row lock on the header. Only
// useful on a tx-bound repository; keeps two concurrent cancels from both
// restoring stock.
func (r *OrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.getOne(query, id)
}

func (r *OrderRepo) getOne(query string, args ...any) (*entity.Order, error) {
	o, err := r.scanOrderRow(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := r.loadLines(o); err != nil {
		return nil, err
	}
	return o, nil
}

// List returns orders matching the filter, newest first, lines included.
func (r *OrderRepo) List(f repository.OrderFilter) ([]*entity.Order, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + orderColumns + ` FROM orders`)
	var conds []string
	var args []any
	if f.PurchasedID != "" {
		args = append(args, "%"+f.PurchasedID+"%")
		conds = append(conds, fmt.Sprintf("purchased_id ILIKE $%d", len(args)))
	}
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		conds = append(conds, fmt.Sprintf("id IN (SELECT order_id FROM order_lines WHERE product_id = $%d)", len(args)))
	}
	if f.Start != nil {
		args = append(args, *f.Start)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.End != nil {
		args = append(args, *f.End)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		o, err := r.scanOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range out {
		if err := r.loadLines(o); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// NextPurchaseNumber draws the next value from the purchase code sequence.
func (r *OrderRepo) NextPurchaseNumber() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT nextval('purchase_code_seq')::int`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next purchase number: %w", err)
	}
	return n, nil
}

// UpdateStatus rewrites the status pair and the stored total of one order.
func (r *OrderRepo) UpdateStatus(id string, total decimal.Decimal, orderStatus, paymentStatus, updatedBy string) error {
	query := `
		UPDATE orders
		SET total_amount = $2, order_status = $3, payment_status = $4, updated_by = $5, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, total, orderStatus, paymentStatus, updatedBy)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// MonthlySales sums total_amount per calendar month, oldest bucket first.
func (r *OrderRepo) MonthlySales() ([]repository.MonthlyAmount, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month, COALESCE(SUM(total_amount), 0)
		FROM orders GROUP BY month ORDER BY month ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("monthly sales: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlyAmount
	for rows.Next() {
		var m repository.MonthlyAmount
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("scan monthly sales: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *OrderRepo) scanOrderRow(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var memberType, memberPhone *string
	var memberPoints *decimal.Decimal
	err := row.Scan(
		&o.ID, &o.PurchasedID, &o.Amount, &o.Discount, &o.CalculatedDiscount,
		&o.VATAmount, &o.TotalAmount, &o.PaidAmount, &o.ChangeAmount,
		&o.PaymentMethod, &o.OrderStatus, &o.PaymentStatus,
		&memberType, &memberPhone, &memberPoints,
		&o.CreatedBy, &o.UpdatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if memberPhone != nil {
		o.Member = &entity.MemberSnapshot{PhoneNumber: *memberPhone}
		if memberType != nil {
			o.Member.Type = *memberType
		}
		if memberPoints != nil {
			o.Member.Points = *memberPoints
		}
	}
	return &o, nil
}

func (r *OrderRepo) loadLines(o *entity.Order) error {
	query := `
		SELECT product_id, name, price, quantity, is_discountable
		FROM order_lines WHERE order_id = $1 ORDER BY line_no ASC`
	rows, err := r.q.Query(context.Background(), query, o.ID)
	if err != nil {
		return fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.Price, &l.Quantity, &l.IsDiscountable); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	return rows.Err()
}
