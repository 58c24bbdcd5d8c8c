package sales

import (
	"context"

	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

// TxRunner executes fn inside one database transaction, handing it
// repositories bound to that transaction. It guarantees that order creation
// and the stock adjustments for its lines commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// OrderExporter renders orders into a spreadsheet file and returns its path.
// The caller is responsible for removing the file after sending it.
type OrderExporter interface {
	Export(orders []*entity.Order) (string, error)
}
