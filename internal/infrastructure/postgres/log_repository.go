package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

var _ repository.CashCountRepository = (*CashCountRepo)(nil)
var _ repository.LoginLogRepository = (*LoginLogRepo)(nil)

// CashCountRepo implements the CashCountRepository port over PostgreSQL.
type CashCountRepo struct {
	q Querier
}

// NewCashCountRepository builds the persistence adapter for drawer counts.
func NewCashCountRepository(q Querier) *CashCountRepo {
	return &CashCountRepo{q: q}
}

// Create persists a drawer count.
func (r *CashCountRepo) Create(c *entity.CashCount) error {
	query := `
		INSERT INTO cash_counts (id, riels, dollars, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Riels, c.Dollars, c.CreatedBy, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert cash count: %w", err)
	}
	return nil
}

// List returns every drawer count, newest first.
func (r *CashCountRepo) List() ([]*entity.CashCount, error) {
	query := `SELECT id, riels, dollars, created_by, created_at FROM cash_counts ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list cash counts: %w", err)
	}
	defer rows.Close()

	var out []*entity.CashCount
	for rows.Next() {
		var c entity.CashCount
		if err := rows.Scan(&c.ID, &c.Riels, &c.Dollars, &c.CreatedBy, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cash count: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// LoginLogRepo implements the LoginLogRepository port over PostgreSQL.
type LoginLogRepo struct {
	q Querier
}

// NewLoginLogRepository builds the persistence adapter for the sign-in audit.
func NewLoginLogRepository(q Querier) *LoginLogRepo {
	return &LoginLogRepo{q: q}
}

// Create records one successful sign-in.
func (r *LoginLogRepo) Create(l *entity.LoginLog) error {
	query := `INSERT INTO login_logs (id, user_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.UserID, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert login log: %w", err)
	}
	return nil
}

// CountSince counts sign-ins recorded at or after t.
func (r *LoginLogRepo) CountSince(t time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM login_logs WHERE created_at >= $1`, t).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count login logs: %w", err)
	}
	return n, nil
}
