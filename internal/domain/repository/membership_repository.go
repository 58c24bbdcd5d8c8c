package repository

import (
	"github.com/shopspring/decimal"

	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
)

// MembershipFilter narrows membership listings. Search matches the phone
// number as a case-insensitive substring; Type is an exact match.
type MembershipFilter struct {
	Search string
	Type   string
}

// MembershipRepository port for membership persistence.
type MembershipRepository interface {
	Create(m *entity.Membership) error
	GetByID(id string) (*entity.Membership, error)
	GetByPhone(phone string) (*entity.Membership, error)
	// GetActiveByPhone only matches memberships with is_active = true.
	GetActiveByPhone(phone string) (*entity.Membership, error)
	List(f MembershipFilter) ([]*entity.Membership, error)
	// UpdatePoints replaces points and the invoice list wholesale.
	UpdatePoints(phone string, points decimal.Decimal, invoices []string, updatedBy string) (*entity.Membership, error)
	Update(m *entity.Membership) error
}
