package dto

import (
	"encoding/json"
	"time"
)

// CreateCashCountRequest drawer count payload. Riels and Dollars carry
// free-form denomination breakdowns.
type CreateCashCountRequest struct {
	Riels   json.RawMessage `json:"riels"`
	Dollars json.RawMessage `json:"dollars"`
}

// CashCountResponse drawer count as returned by the API.
type CashCountResponse struct {
	ID        string          `json:"id"`
	Riels     json.RawMessage `json:"riels"`
	Dollars   json.RawMessage `json:"dollars"`
	CreatedBy string          `json:"createdBy"`
	CreatedAt time.Time       `json:"createdAt"`
}
