package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
)

// OrderFilter narrows order listings. PurchasedID matches as a
// case-insensitive substring; Start/End bound CreatedAt inclusively.
type OrderFilter struct {
	PurchasedID string
	ProductID   string
	Start       *time.Time
	End         *time.Time
}

// MonthlyAmount is one bucket of a per-month aggregation.
type MonthlyAmount struct {
	Month string // YYYY-MM
	Total decimal.Decimal
}

// OrderRepository port for order persistence. Create inserts the header and
// all lines.
type OrderRepository interface {
	Create(o *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetByIDForUpdate locks the order row until the surrounding transaction
	// ends. Only meaningful on a tx-bound repository.
	GetByIDForUpdate(id string) (*entity.Order, error)
	List(f OrderFilter) ([]*entity.Order, error)
	// NextPurchaseNumber draws the next value of the purchase code sequence.
	NextPurchaseNumber() (int, error)
	UpdateStatus(id string, total decimal.Decimal, orderStatus, paymentStatus, updatedBy string) error
	MonthlySales() ([]MonthlyAmount, error)
}
