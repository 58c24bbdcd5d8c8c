package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

const membershipColumns = `id, phone_number, type, is_active, points, invoices, created_by, updated_by, created_at, updated_at`

// MembershipRepo implements the MembershipRepository port over PostgreSQL.
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository builds the persistence adapter for memberships.
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

// Create persists a new membership.
func (r *MembershipRepo) Create(m *entity.Membership) error {
	query := `
		INSERT INTO memberships (` + membershipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.PhoneNumber, m.Type, m.IsActive, m.Points, m.Invoices,
		m.CreatedBy, m.UpdatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert membership: %w", err)
	}
	return nil
}

// GetByID fetches a membership by ID.
func (r *MembershipRepo) GetByID(id string) (*entity.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE id = $1`
	return r.getOne(query, id)
}

// GetByPhone fetches a membership by phone number regardless of status.
func (r *MembershipRepo) GetByPhone(phone string) (*entity.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE phone_number = $1`
	return r.getOne(query, phone)
}

// GetActiveByPhone fetches an active membership by phone number.
func (r *MembershipRepo) GetActiveByPhone(phone string) (*entity.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE phone_number = $1 AND is_active = true`
	return r.getOne(query, phone)
}

func (r *MembershipRepo) getOne(query string, args ...any) (*entity.Membership, error) {
	m, err := scanMembership(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return m, nil
}

// List returns memberships matching the filter, newest first.
func (r *MembershipRepo) List(f repository.MembershipFilter) ([]*entity.Membership, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + membershipColumns + ` FROM memberships`)
	var conds []string
	var args []any
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("phone_number ILIKE $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC")

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	defer rows.Close()

	var out []*entity.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membership: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpdatePoints replaces the point balance and the invoice list wholesale,
// returning the updated record or (nil, nil) when the phone is unknown.
func (r *MembershipRepo) UpdatePoints(phone string, points decimal.Decimal, invoices []string, updatedBy string) (*entity.Membership, error) {
	query := `
		UPDATE memberships
		SET points = $2, invoices = $3, updated_by = $4, updated_at = now()
		WHERE phone_number = $1
		RETURNING ` + membershipColumns
	m, err := scanMembership(r.q.QueryRow(context.Background(), query, phone, points, invoices, updatedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update membership points: %w", err)
	}
	return m, nil
}

// Update rewrites the mutable columns of a membership.
func (r *MembershipRepo) Update(m *entity.Membership) error {
	query := `
		UPDATE memberships
		SET phone_number = $2, type = $3, is_active = $4, points = $5, invoices = $6, updated_by = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.PhoneNumber, m.Type, m.IsActive, m.Points, m.Invoices, m.UpdatedBy, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update membership: %w", err)
	}
	return nil
}

func scanMembership(row pgx.Row) (*entity.Membership, error) {
	var m entity.Membership
	err := row.Scan(
		&m.ID, &m.PhoneNumber, &m.Type, &m.IsActive, &m.Points, &m.Invoices,
		&m.CreatedBy, &m.UpdatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
