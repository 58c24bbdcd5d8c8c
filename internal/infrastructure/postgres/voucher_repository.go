package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

var _ repository.VoucherRepository = (*VoucherRepo)(nil)

const voucherColumns = `id, barcode, discount, valid_from, valid_to, is_expired, is_active, created_by, created_at, updated_at`

// VoucherRepo implements the VoucherRepository port over PostgreSQL.
type VoucherRepo struct {
	q Querier
}

// NewVoucherRepository builds the persistence adapter for vouchers.
func NewVoucherRepository(q Querier) *VoucherRepo {
	return &VoucherRepo{q: q}
}

// Create persists a new voucher.
func (r *VoucherRepo) Create(v *entity.Voucher) error {
	query := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Barcode, v.Discount, v.ValidFrom, v.ValidTo,
		v.IsExpired, v.IsActive, v.CreatedBy, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert voucher: %w", err)
	}
	return nil
}

// GetByID fetches a voucher by ID.
func (r *VoucherRepo) GetByID(id string) (*entity.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1`
	v, err := scanVoucher(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher: %w", err)
	}
	return v, nil
}

// List returns vouchers, newest first, optionally filtered by barcode substring.
func (r *VoucherRepo) List(barcode string) ([]*entity.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers`
	var args []any
	if barcode != "" {
		query += ` WHERE barcode ILIKE $1`
		args = append(args, "%"+barcode+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan voucher: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Update rewrites the mutable columns of a voucher.
func (r *VoucherRepo) Update(v *entity.Voucher) error {
	query := `
		UPDATE vouchers
		SET barcode = $2, discount = $3, valid_from = $4, valid_to = $5, is_expired = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.Barcode, v.Discount, v.ValidFrom, v.ValidTo, v.IsExpired, v.IsActive, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update voucher: %w", err)
	}
	return nil
}

// DeactivateByBarcode flips is_active off on the voucher whose barcode matches
// case-insensitively, returning the updated record or (nil, nil) when unknown.
func (r *VoucherRepo) DeactivateByBarcode(barcode string) (*entity.Voucher, error) {
	query := `
		UPDATE vouchers SET is_active = false, updated_at = now()
		WHERE lower(barcode) = lower($1)
		RETURNING ` + voucherColumns
	v, err := scanVoucher(r.q.QueryRow(context.Background(), query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("deactivate voucher: %w", err)
	}
	return v, nil
}

func scanVoucher(row pgx.Row) (*entity.Voucher, error) {
	var v entity.Voucher
	err := row.Scan(
		&v.ID, &v.Barcode, &v.Discount, &v.ValidFrom, &v.ValidTo,
		&v.IsExpired, &v.IsActive, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
