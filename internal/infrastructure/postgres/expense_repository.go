package postgres

import (
	"context"
	"fmt"

	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implements the ExpenseRepository port over PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository builds the persistence adapter for expenses.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persists a new expense.
func (r *ExpenseRepo) Create(e *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, category, amount, supplier, remarks, date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Category, e.Amount, e.Supplier, e.Remarks, e.Date,
		e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List returns every expense, newest first.
func (r *ExpenseRepo) List() ([]*entity.Expense, error) {
	query := `
		SELECT id, category, amount, supplier, remarks, date, created_by, created_at, updated_at
		FROM expenses ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(
			&e.ID, &e.Category, &e.Amount, &e.Supplier, &e.Remarks, &e.Date,
			&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// MonthlyTotals sums expense amounts per calendar month, oldest bucket first.
func (r *ExpenseRepo) MonthlyTotals() ([]repository.MonthlyAmount, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM') AS month, COALESCE(SUM(amount), 0)
		FROM expenses GROUP BY month ORDER BY month ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("monthly expenses: %w", err)
	}
	defer rows.Close()

	var out []repository.MonthlyAmount
	for rows.Next() {
		var m repository.MonthlyAmount
		if err := rows.Scan(&m.Month, &m.Total); err != nil {
			return nil, fmt.Errorf("scan monthly expenses: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
