package system

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

// SystemUseCase roles, expenses and vouchers.
type SystemUseCase struct {
	roleRepo    repository.RoleRepository
	expenseRepo repository.ExpenseRepository
	voucherRepo repository.VoucherRepository
	now         func() time.Time
}

// NewSystemUseCase builds the usecase.
func NewSystemUseCase(roleRepo repository.RoleRepository, expenseRepo repository.ExpenseRepository, voucherRepo repository.VoucherRepository) *SystemUseCase {
	return &SystemUseCase{
		roleRepo:    roleRepo,
		expenseRepo: expenseRepo,
		voucherRepo: voucherRepo,
		now:         time.Now,
	}
}

// CreateRole persists a new role; duplicate names are rejected.
func (uc *SystemUseCase) CreateRole(principalID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" || len(in.Codes) == 0 || in.IsActive == nil {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrBadRequest)
	}
	now := uc.now()
	r := &entity.Role{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Codes:     in.Codes,
		Remarks:   in.Remarks,
		IsActive:  *in.IsActive,
		CreatedBy: principalID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.roleRepo.Create(r); err != nil {
		if err == domain.ErrDuplicate {
			return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
		}
		return nil, err
	}
	return toRoleResponse(r), nil
}

// Roles lists every role.
func (uc *SystemUseCase) Roles() ([]dto.RoleResponse, error) {
	roles, err := uc.roleRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, *toRoleResponse(r))
	}
	return out, nil
}

// RoleByID returns one role.
func (uc *SystemUseCase) RoleByID(id string) (*dto.RoleResponse, error) {
	r, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: role does not exist", domain.ErrNotFound)
	}
	return toRoleResponse(r), nil
}

// UpdateRole applies a partial role update.
func (uc *SystemUseCase) UpdateRole(id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	r, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: role does not exist", domain.ErrNotFound)
	}
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Codes != nil {
		r.Codes = *in.Codes
	}
	if in.Remarks != nil {
		r.Remarks = *in.Remarks
	}
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	r.UpdatedAt = uc.now()
	if err := uc.roleRepo.Update(r); err != nil {
		if err == domain.ErrDuplicate {
			return nil, fmt.Errorf("%w: name", domain.ErrDuplicate)
		}
		return nil, err
	}
	return toRoleResponse(r), nil
}

// CreateExpense persists a spending record.
func (uc *SystemUseCase) CreateExpense(principalID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Category == "" || in.Supplier == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: these fields are required", domain.ErrBadRequest)
	}
	date := in.Date
	if date.IsZero() {
		date = uc.now()
	}
	e := &entity.Expense{
		ID:        uuid.New().String(),
		Category:  in.Category,
		Amount:    in.Amount,
		Supplier:  in.Supplier,
		Remarks:   in.Remarks,
		Date:      date,
		CreatedBy: principalID,
		CreatedAt: uc.now(),
	}
	if err := uc.expenseRepo.Create(e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// Expenses lists every expense.
func (uc *SystemUseCase) Expenses() ([]dto.ExpenseResponse, error) {
	expenses, err := uc.expenseRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, *toExpenseResponse(e))
	}
	return out, nil
}

// MonthlyExpenses aggregates expense totals per month, oldest first.
func (uc *SystemUseCase) MonthlyExpenses() ([]dto.MonthlyExpenseResponse, error) {
	buckets, err := uc.expenseRepo.MonthlyTotals()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MonthlyExpenseResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.MonthlyExpenseResponse{Month: shortMonth(b.Month), Expense: b.Total})
	}
	return out, nil
}

// CreateVoucher persists a discount voucher. IsExpired is computed at
// creation time: true when now falls outside the validity window.
func (uc *SystemUseCase) CreateVoucher(principalID string, in dto.CreateVoucherRequest) (*dto.VoucherResponse, error) {
	if in.Barcode == "" || !in.Discount.GreaterThan(decimal.Zero) || in.ValidFrom.IsZero() || in.ValidTo.IsZero() {
		return nil, fmt.Errorf("%w: these fields are required", domain.ErrBadRequest)
	}
	if in.ValidTo.Before(in.ValidFrom) {
		return nil, fmt.Errorf("%w: validTo precedes validFrom", domain.ErrBadRequest)
	}
	now := uc.now()
	v := &entity.Voucher{
		ID:        uuid.New().String(),
		Barcode:   in.Barcode,
		Discount:  in.Discount,
		ValidFrom: in.ValidFrom,
		ValidTo:   in.ValidTo,
		IsActive:  true,
		CreatedBy: principalID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	v.IsExpired = v.Expired(now)
	if err := uc.voucherRepo.Create(v); err != nil {
		return nil, err
	}
	return toVoucherResponse(v), nil
}

// Vouchers lists vouchers, optionally filtered by barcode substring.
func (uc *SystemUseCase) Vouchers(barcode string) ([]dto.VoucherResponse, error) {
	vouchers, err := uc.voucherRepo.List(barcode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, *toVoucherResponse(v))
	}
	return out, nil
}

// VoucherByID returns one voucher.
func (uc *SystemUseCase) VoucherByID(id string) (*dto.VoucherResponse, error) {
	v, err := uc.voucherRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: voucher does not exist", domain.ErrNotFound)
	}
	return toVoucherResponse(v), nil
}

// RedeemVoucherByBarcode deactivates the voucher with the given barcode
// (case-insensitive exact match) and returns it.
func (uc *SystemUseCase) RedeemVoucherByBarcode(barcode string) (*dto.VoucherResponse, error) {
	if barcode == "" {
		return nil, fmt.Errorf("%w: barcode", domain.ErrMissingParam)
	}
	v, err := uc.voucherRepo.DeactivateByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: voucher not found", domain.ErrNotFound)
	}
	return toVoucherResponse(v), nil
}

// UpdateVoucher applies a partial voucher update and recomputes IsExpired
// when the validity window changes.
func (uc *SystemUseCase) UpdateVoucher(id string, in dto.UpdateVoucherRequest) (*dto.VoucherResponse, error) {
	v, err := uc.voucherRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: voucher does not exist", domain.ErrNotFound)
	}
	if in.Discount != nil {
		v.Discount = *in.Discount
	}
	if in.ValidFrom != nil {
		v.ValidFrom = *in.ValidFrom
	}
	if in.ValidTo != nil {
		v.ValidTo = *in.ValidTo
	}
	if in.IsActive != nil {
		v.IsActive = *in.IsActive
	}
	v.IsExpired = v.Expired(uc.now())
	v.UpdatedAt = uc.now()
	if err := uc.voucherRepo.Update(v); err != nil {
		return nil, err
	}
	return toVoucherResponse(v), nil
}

// shortMonth renders a YYYY-MM bucket as a short English month name.
func shortMonth(yyyymm string) string {
	t, err := time.Parse("2006-01", yyyymm)
	if err != nil {
		return yyyymm
	}
	return t.Format("Jan")
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:        r.ID,
		Name:      r.Name,
		Codes:     r.Codes,
		Remarks:   r.Remarks,
		IsActive:  r.IsActive,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:        e.ID,
		Category:  e.Category,
		Amount:    e.Amount,
		Supplier:  e.Supplier,
		Remarks:   e.Remarks,
		Date:      e.Date,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
	}
}

func toVoucherResponse(v *entity.Voucher) *dto.VoucherResponse {
	return &dto.VoucherResponse{
		ID:        v.ID,
		Barcode:   v.Barcode,
		Discount:  v.Discount,
		ValidFrom: v.ValidFrom,
		ValidTo:   v.ValidTo,
		IsExpired: v.IsExpired,
		IsActive:  v.IsActive,
		CreatedBy: v.CreatedBy,
		CreatedAt: v.CreatedAt,
	}
}
