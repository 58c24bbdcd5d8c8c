package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

func placeTestOrder(t *testing.T, uc *OrderUseCase, productID string, qty int) *dto.OrderResponse {
	t.Helper()
	out, err := uc.PlaceOrder(context.Background(), testPrincipal, dto.CreateOrderRequest{
		Items:       []dto.OrderItemRequest{{ProductID: productID, Quantity: qty}},
		TotalAmount: decimal.RequireFromString("7.50"),
	})
	require.NoError(t, err)
	return out
}

func TestCancel_RestoresStockAndZeroesTotal(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", "Monstera", 10))
	uc, orders := newTestOrderUseCase(products, newFakeMembershipRepo())
	placed := placeTestOrder(t, uc, "p1", 3)

	require.NoError(t, uc.Cancel(context.Background(), placed.ID, "manager-1"))

	stored, _ := orders.GetByID(placed.ID)
	assert.Equal(t, entity.StatusCancelled, stored.OrderStatus)
	assert.Equal(t, entity.StatusCancelled, stored.PaymentStatus)
	assert.True(t, stored.TotalAmount.IsZero())
	assert.Equal(t, "manager-1", stored.UpdatedBy)

	p, _ := products.GetByID("p1")
	assert.Equal(t, 10, p.Stock, "cancel must restore the sold quantity")
	assert.Equal(t, 0, p.SoldQty)
}

func TestCancel_IsIdempotent(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", "Monstera", 10))
	uc, _ := newTestOrderUseCase(products, newFakeMembershipRepo())
	placed := placeTestOrder(t, uc, "p1", 3)

	require.NoError(t, uc.Cancel(context.Background(), placed.ID, "manager-1"))
	require.NoError(t, uc.Cancel(context.Background(), placed.ID, "manager-1"))

	p, _ := products.GetByID("p1")
	assert.Equal(t, 10, p.Stock, "stock must be restored exactly once")
	assert.Equal(t, 0, p.SoldQty)
}

func TestCancel_UnknownOrder(t *testing.T) {
	uc, _ := newTestOrderUseCase(newFakeProductRepo(), newFakeMembershipRepo())

	err := uc.Cancel(context.Background(), "missing", "manager-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkRetrieved_SetsTotalAndCompletes(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", "Monstera", 10))
	uc, orders := newTestOrderUseCase(products, newFakeMembershipRepo())
	placed := placeTestOrder(t, uc, "p1", 2)

	require.NoError(t, uc.MarkRetrieved(placed.ID, "manager-1", decimal.RequireFromString("4.25")))

	stored, _ := orders.GetByID(placed.ID)
	assert.Equal(t, entity.StatusComplete, stored.OrderStatus)
	assert.Equal(t, entity.StatusComplete, stored.PaymentStatus)
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("4.25")))
}

func TestMarkRetrieved_UnknownOrder(t *testing.T) {
	uc, _ := newTestOrderUseCase(newFakeProductRepo(), newFakeMembershipRepo())

	err := uc.MarkRetrieved("missing", "manager-1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_CountsAndSumsTotals(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", "Monstera", 10))
	uc, _ := newTestOrderUseCase(products, newFakeMembershipRepo())
	placeTestOrder(t, uc, "p1", 1)
	placeTestOrder(t, uc, "p1", 2)

	out, err := uc.List(repository.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	assert.Len(t, out.Orders, 2)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("15.00")), "amount is the sum of totals, got %s", out.Amount)
}

func TestToday_RequiresDate(t *testing.T) {
	uc, _ := newTestOrderUseCase(newFakeProductRepo(), newFakeMembershipRepo())

	_, err := uc.Today("")
	assert.ErrorIs(t, err, domain.ErrMissingParam)

	_, err = uc.Today("not-a-date")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestToday_BoundsTheDay(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", "Monstera", 10))
	uc, _ := newTestOrderUseCase(products, newFakeMembershipRepo())
	uc.now = func() time.Time { return time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local) }
	placeTestOrder(t, uc, "p1", 1)

	out, err := uc.Today("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 1, out.Count)

	out, err = uc.Today("2025-03-11")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
}

func TestByRange_RejectsUnknownName(t *testing.T) {
	uc, _ := newTestOrderUseCase(newFakeProductRepo(), newFakeMembershipRepo())

	_, err := uc.ByRange("")
	assert.ErrorIs(t, err, domain.ErrMissingParam)

	_, err = uc.ByRange("daily")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestMonthlySales_UsesShortMonthNames(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", "Monstera", 10))
	uc, _ := newTestOrderUseCase(products, newFakeMembershipRepo())
	uc.now = func() time.Time { return time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local) }
	placeTestOrder(t, uc, "p1", 1)

	out, err := uc.MonthlySales()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Mar", out[0].Month)
	assert.True(t, out[0].Sale.Equal(decimal.RequireFromString("7.50")))
}

func TestExport_HandsOrdersToExporter(t *testing.T) {
	products := newFakeProductRepo(testProduct("p1", "Monstera", 10))
	orders := newFakeOrderRepo()
	exporter := &fakeExporter{path: "/tmp/orders-test.xlsx"}
	tx := &fakeTxRunner{orders: orders, products: products}
	uc := NewOrderUseCase(tx, orders, products, newFakeMembershipRepo(), exporter)
	placeTestOrder(t, uc, "p1", 1)

	path, err := uc.Export(repository.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/orders-test.xlsx", path)
	assert.Len(t, exporter.orders, 1)
}
