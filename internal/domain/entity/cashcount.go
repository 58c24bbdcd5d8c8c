package entity

import (
	"encoding/json"
	"time"
)

// CashCount logs one cash-drawer count. Riels and Dollars hold free-form
// denomination breakdowns as submitted by the counter.
type CashCount struct {
	ID        string
	Riels     json.RawMessage
	Dollars   json.RawMessage
	CreatedBy string
	CreatedAt time.Time
}

// LoginLog records one successful sign-in; it drives the firstLoginToday
// flag returned by the sign-in endpoint.
type LoginLog struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}
