package membership

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

// MembershipUseCase loyalty membership management.
type MembershipUseCase struct {
	membershipRepo repository.MembershipRepository
}

// NewMembershipUseCase builds the usecase.
func NewMembershipUseCase(membershipRepo repository.MembershipRepository) *MembershipUseCase {
	return &MembershipUseCase{membershipRepo: membershipRepo}
}

// Create registers a membership. Every field is required and the phone number
// must be unused.
func (uc *MembershipUseCase) Create(principalID string, in dto.CreateMembershipRequest) (*dto.MembershipResponse, error) {
	if in.Type == "" {
		return nil, fmt.Errorf("%w: type", domain.ErrMissingParam)
	}
	if in.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: phoneNumber", domain.ErrMissingParam)
	}
	if in.IsActive == nil {
		return nil, fmt.Errorf("%w: isActive", domain.ErrMissingParam)
	}
	if in.Invoices == nil {
		return nil, fmt.Errorf("%w: invoices", domain.ErrMissingParam)
	}

	existing, err := uc.membershipRepo.GetByPhone(in.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: this phone number has registered as membership", domain.ErrBadRequest)
	}

	now := time.Now()
	m := &entity.Membership{
		ID:          uuid.New().String(),
		PhoneNumber: in.PhoneNumber,
		Type:        in.Type,
		IsActive:    *in.IsActive,
		Points:      in.Points.Round(2),
		Invoices:    in.Invoices,
		CreatedBy:   principalID,
		UpdatedBy:   principalID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.membershipRepo.Create(m); err != nil {
		if err == domain.ErrDuplicate {
			return nil, fmt.Errorf("%w: this phone number has registered as membership", domain.ErrBadRequest)
		}
		return nil, err
	}
	return toMembershipResponse(m), nil
}

// List returns memberships matching the filter plus their count.
func (uc *MembershipUseCase) List(f repository.MembershipFilter) (*dto.MembershipListResponse, error) {
	members, err := uc.membershipRepo.List(f)
	if err != nil {
		return nil, err
	}
	out := &dto.MembershipListResponse{
		Members: make([]dto.MembershipResponse, 0, len(members)),
		Count:   len(members),
	}
	for _, m := range members {
		out.Members = append(out.Members, *toMembershipResponse(m))
	}
	return out, nil
}

// GetByID returns one membership.
func (uc *MembershipUseCase) GetByID(id string) (*dto.MembershipResponse, error) {
	m, err := uc.membershipRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: membership does not exist", domain.ErrNotFound)
	}
	return toMembershipResponse(m), nil
}

// UpdatePoints replaces the membership's points (rounded to two places) and
// its invoice list wholesale. Repeating the same call leaves the record in
// the same final state.
func (uc *MembershipUseCase) UpdatePoints(principalID, phone string, in dto.UpdatePointsRequest) (*dto.MembershipResponse, error) {
	invoices := []string(in.Invoice)
	if invoices == nil {
		invoices = []string{}
	}
	m, err := uc.membershipRepo.UpdatePoints(phone, in.Points.Round(2), invoices, principalID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: membership does not exist", domain.ErrNotFound)
	}
	return toMembershipResponse(m), nil
}

// Update applies a partial membership update (phone, active flag).
func (uc *MembershipUseCase) Update(principalID, id string, in dto.UpdateMembershipRequest) (*dto.MembershipResponse, error) {
	m, err := uc.membershipRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: membership does not exist", domain.ErrNotFound)
	}
	if in.PhoneNumber != nil {
		m.PhoneNumber = *in.PhoneNumber
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
	m.UpdatedBy = principalID
	m.UpdatedAt = time.Now()
	if err := uc.membershipRepo.Update(m); err != nil {
		if err == domain.ErrDuplicate {
			return nil, fmt.Errorf("%w: this phone number has registered as membership", domain.ErrBadRequest)
		}
		return nil, err
	}
	return toMembershipResponse(m), nil
}

func toMembershipResponse(m *entity.Membership) *dto.MembershipResponse {
	if m == nil {
		return nil
	}
	return &dto.MembershipResponse{
		ID:          m.ID,
		PhoneNumber: m.PhoneNumber,
		Type:        m.Type,
		IsActive:    m.IsActive,
		Points:      m.Points,
		Invoices:    m.Invoices,
		CreatedBy:   m.CreatedBy,
		UpdatedBy:   m.UpdatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
