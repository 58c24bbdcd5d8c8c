package entity

import "time"

// Capability codes granted to users and roles. CodeDiscount authorizes
// applying a discount at the counter.
const (
	CodeDiscount = "DISCOUNT"
	CodeRefund   = "REFUND"
	CodeAdmin    = "ADMIN"
)

// User is a staff or admin account. Codes are coarse capability tags checked
// by the authorization middleware.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // unique
	PasswordHash string // bcrypt, never plain after persisting
	PhoneNumber  string
	RoleID       string
	Codes        []string
	IsActive     bool
	Pictures     string
	CreatedBy    string
	UpdatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name the way the sign-up flow stores it.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasCode reports whether the user carries the given capability code.
func (u *User) HasCode(code string) bool {
	for _, c := range u.Codes {
		if c == code {
			return true
		}
	}
	return false
}
