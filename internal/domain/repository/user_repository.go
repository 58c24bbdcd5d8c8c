package repository

import "github.com/iamungmonita/plants-box-api/internal/domain/entity"

// UserRepository port for staff account persistence.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetActiveByEmail only matches accounts with is_active = true.
	GetActiveByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(u *entity.User) error
}

// RoleRepository port for role persistence.
type RoleRepository interface {
	Create(r *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	List() ([]*entity.Role, error)
	Update(r *entity.Role) error
}
