package membership

import (
	"encoding/json"
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

type fakeMembershipRepo struct {
	members map[string]*entity.Membership // keyed by phone
}

func newFakeMembershipRepo(members ...*entity.Membership) *fakeMembershipRepo {
	r := &fakeMembershipRepo{members: make(map[string]*entity.Membership)}
	for _, m := range members {
		cp := *m
		r.members[m.PhoneNumber] = &cp
	}
	return r
}

func (r *fakeMembershipRepo) Create(m *entity.Membership) error {
	if _, ok := r.members[m.PhoneNumber]; ok {
		return domain.ErrDuplicate
	}
	cp := *m
	r.members[m.PhoneNumber] = &cp
	return nil
}

func (r *fakeMembershipRepo) GetByID(id string) (*entity.Membership, error) {
	for _, m := range r.members {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMembershipRepo) GetByPhone(phone string) (*entity.Membership, error) {
	m, ok := r.members[phone]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMembershipRepo) GetActiveByPhone(phone string) (*entity.Membership, error) {
	m, err := r.GetByPhone(phone)
	if err != nil || m == nil || !m.IsActive {
		return nil, err
	}
	return m, nil
}

func (r *fakeMembershipRepo) List(repository.MembershipFilter) ([]*entity.Membership, error) {
	out := make([]*entity.Membership, 0, len(r.members))
	for _, m := range r.members {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMembershipRepo) UpdatePoints(phone string, points decimal.Decimal, invoices []string, updatedBy string) (*entity.Membership, error) {
	m, ok := r.members[phone]
	if !ok {
		return nil, nil
	}
	m.Points = points
	m.Invoices = append([]string(nil), invoices...)
	m.UpdatedBy = updatedBy
	cp := *m
	return &cp, nil
}

func (r *fakeMembershipRepo) Update(m *entity.Membership) error {
	cp := *m
	r.members[m.PhoneNumber] = &cp
	return nil
}

func boolPtr(b bool) *bool { return &b }

func validCreateRequest() dto.CreateMembershipRequest {
	return dto.CreateMembershipRequest{
		Type:        "GOLD",
		PhoneNumber: "012345678",
		IsActive:    boolPtr(true),
		Invoices:    []string{},
		Points:      decimal.RequireFromString("1.005"),
	}
}

func TestCreate_NamesTheMissingField(t *testing.T) {
	uc := NewMembershipUseCase(newFakeMembershipRepo())

	cases := []struct {
		field  string
		mutate func(*dto.CreateMembershipRequest)
	}{
		{"type", func(r *dto.CreateMembershipRequest) { r.Type = "" }},
		{"phoneNumber", func(r *dto.CreateMembershipRequest) { r.PhoneNumber = "" }},
		{"isActive", func(r *dto.CreateMembershipRequest) { r.IsActive = nil }},
		{"invoices", func(r *dto.CreateMembershipRequest) { r.Invoices = nil }},
	}
	for _, tc := range cases {
		req := validCreateRequest()
		tc.mutate(&req)
		_, err := uc.Create(testPrincipal, req)
		require.Error(t, err, tc.field)
		assert.ErrorIs(t, err, domain.ErrMissingParam, tc.field)
		assert.Contains(t, err.Error(), tc.field)
	}
}

func TestCreate_RoundsPointsToTwoPlaces(t *testing.T) {
	uc := NewMembershipUseCase(newFakeMembershipRepo())

	out, err := uc.Create(testPrincipal, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "1.01", out.Points.StringFixed(2))
}

func TestCreate_DuplicatePhone(t *testing.T) {
	uc := NewMembershipUseCase(newFakeMembershipRepo(&entity.Membership{
		ID:          "m1",
		PhoneNumber: "012345678",
		Type:        "GOLD",
		IsActive:    true,
	}))

	_, err := uc.Create(testPrincipal, validCreateRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "this phone number has registered as membership")
}

func TestUpdatePoints_ReplacesInvoicesWholesale(t *testing.T) {
	repo := newFakeMembershipRepo(&entity.Membership{
		ID:          "m1",
		PhoneNumber: "012345678",
		Type:        "GOLD",
		IsActive:    true,
		Invoices:    []string{"PO-00001", "PO-00002"},
	})
	uc := NewMembershipUseCase(repo)

	out, err := uc.UpdatePoints(testPrincipal, "012345678", dto.UpdatePointsRequest{
		Points:  decimal.RequireFromString("3.333"),
		Invoice: dto.FlexibleStrings{"PO-00009"},
	})
	require.NoError(t, err)
	assert.Equal(t, "3.33", out.Points.StringFixed(2))
	assert.Equal(t, []string{"PO-00009"}, out.Invoices, "the stored list is replaced, not appended to")
}

func TestUpdatePoints_IsIdempotent(t *testing.T) {
	repo := newFakeMembershipRepo(&entity.Membership{
		ID:          "m1",
		PhoneNumber: "012345678",
		Type:        "GOLD",
		IsActive:    true,
	})
	uc := NewMembershipUseCase(repo)

	req := dto.UpdatePointsRequest{
		Points:  decimal.RequireFromString("5.00"),
		Invoice: dto.FlexibleStrings{"PO-00003"},
	}
	first, err := uc.UpdatePoints(testPrincipal, "012345678", req)
	require.NoError(t, err)
	second, err := uc.UpdatePoints(testPrincipal, "012345678", req)
	require.NoError(t, err)

	assert.True(t, first.Points.Equal(second.Points))
	assert.Equal(t, first.Invoices, second.Invoices)
}

func TestUpdatePoints_UnknownPhone(t *testing.T) {
	uc := NewMembershipUseCase(newFakeMembershipRepo())

	_, err := uc.UpdatePoints(testPrincipal, "000", dto.UpdatePointsRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// The invoice field accepts either a single string or an array on the wire;
// a single value is promoted to a one-element list.
func TestFlexibleStrings_PromotesSingleValue(t *testing.T) {
	var req dto.UpdatePointsRequest
	require.NoError(t, json.Unmarshal([]byte(`{"points":"1.00","invoice":"PO-00001"}`), &req))
	assert.Equal(t, dto.FlexibleStrings{"PO-00001"}, req.Invoice)

	require.NoError(t, json.Unmarshal([]byte(`{"points":"1.00","invoice":["PO-00001","PO-00002"]}`), &req))
	assert.Equal(t, dto.FlexibleStrings{"PO-00001", "PO-00002"}, req.Invoice)
}

func TestUpdate_TogglesActiveFlag(t *testing.T) {
	repo := newFakeMembershipRepo(&entity.Membership{
		ID:          "m1",
		PhoneNumber: "012345678",
		Type:        "GOLD",
		IsActive:    true,
	})
	uc := NewMembershipUseCase(repo)

	out, err := uc.Update(testPrincipal, "m1", dto.UpdateMembershipRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.Equal(t, testPrincipal, out.UpdatedBy)
}
