package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateMembershipRequest payload for POST /membership/create. Every field is
// required; a missing one fails with MissingParam naming it.
type CreateMembershipRequest struct {
	Type        string          `json:"type"`
	PhoneNumber string          `json:"phoneNumber"`
	IsActive    *bool           `json:"isActive"`
	Invoices    []string        `json:"invoices"`
	Points      decimal.Decimal `json:"points"`
}

// UpdatePointsRequest new points value plus the invoice list that replaces
// the stored one. Invoice accepts either a single string or an array.
type UpdatePointsRequest struct {
	Points  decimal.Decimal `json:"points"`
	Invoice FlexibleStrings `json:"invoice"`
}

// FlexibleStrings unmarshals either a JSON string or an array of strings,
// promoting the single value to a one-element list.
type FlexibleStrings []string

func (f *FlexibleStrings) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*f = []string{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*f = many
	return nil
}

// UpdateMembershipRequest partial membership update.
type UpdateMembershipRequest struct {
	PhoneNumber *string `json:"phoneNumber"`
	IsActive    *bool   `json:"isActive"`
}

// MembershipResponse membership as returned by the API.
type MembershipResponse struct {
	ID          string          `json:"id"`
	PhoneNumber string          `json:"phoneNumber"`
	Type        string          `json:"type"`
	IsActive    bool            `json:"isActive"`
	Points      decimal.Decimal `json:"points"`
	Invoices    []string        `json:"invoices"`
	CreatedBy   string          `json:"createdBy"`
	UpdatedBy   string          `json:"updatedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MembershipListResponse members plus their count.
type MembershipListResponse struct {
	Members []MembershipResponse `json:"member"`
	Count   int                  `json:"count"`
}
