package dto

import "time"

// SignInRequest credentials for POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse token plus the first-login-of-the-day flag.
type SignInResponse struct {
	Token           string `json:"token"`
	FirstLoginToday bool   `json:"firstLoginToday"`
}

// SignUpRequest payload for creating a staff account (authenticated).
type SignUpRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Role        string   `json:"role"`
	Codes       []string `json:"codes"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	PhoneNumber string   `json:"phoneNumber"`
	IsActive    bool     `json:"isActive"`
	Pictures    string   `json:"pictures,omitempty"`
}

// UpdateUserRequest partial staff account update. Nil fields are untouched.
type UpdateUserRequest struct {
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	Role        *string   `json:"role"`
	Codes       *[]string `json:"codes"`
	Email       *string   `json:"email"`
	PhoneNumber *string   `json:"phoneNumber"`
	IsActive    *bool     `json:"isActive"`
	Pictures    *string   `json:"pictures"`
}

// UserResponse staff account as returned by the API; never includes the hash.
type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	Codes       []string  `json:"codes"`
	IsActive    bool      `json:"isActive"`
	Pictures    string    `json:"pictures,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	UpdatedBy   string    `json:"updatedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
