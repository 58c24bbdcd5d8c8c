package entity

import "time"

// Role names a position and the capability codes it grants.
type Role struct {
	ID        string
	Name      string // unique
	Codes     []string
	Remarks   string
	IsActive  bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
