package sales

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

// In-memory repositories for the order flow tests. They mirror the
// persistence contract: lookups return (nil, nil) when missing, AdjustStock
// refuses to take stock below zero, and the tx runner restores the previous
// state when the callback fails.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List(repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListBestSelling() ([]*entity.Product, error) {
	return r.List(repository.ProductFilter{})
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AdjustStock(id string, stockDelta, soldDelta int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock+stockDelta < 0 {
		return domain.ErrInsufficientStock
	}
	p.Stock += stockDelta
	p.SoldQty += soldDelta
	return nil
}

func (r *fakeProductRepo) AddStockUpdate(*entity.StockUpdate) error { return nil }

func (r *fakeProductRepo) ListStockUpdates(string) ([]*entity.StockUpdate, error) {
	return nil, nil
}

func (r *fakeProductRepo) snapshot() map[string]*entity.Product {
	out := make(map[string]*entity.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		out[id] = &cp
	}
	return out
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func copyOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Lines = append([]entity.OrderLine(nil), o.Lines...)
	if o.Member != nil {
		m := *o.Member
		cp.Member = &m
	}
	return &cp
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.orders[o.ID] = copyOrder(o)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

func (r *fakeOrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	return r.GetByID(id)
}

func (r *fakeOrderRepo) List(f repository.OrderFilter) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if f.PurchasedID != "" && !strings.Contains(strings.ToLower(o.PurchasedID), strings.ToLower(f.PurchasedID)) {
			continue
		}
		if f.Start != nil && o.CreatedAt.Before(*f.Start) {
			continue
		}
		if f.End != nil && o.CreatedAt.After(*f.End) {
			continue
		}
		out = append(out, copyOrder(o))
	}
	return out, nil
}

func (r *fakeOrderRepo) NextPurchaseNumber() (int, error) {
	r.seq++
	return r.seq, nil
}

func (r *fakeOrderRepo) UpdateStatus(id string, total decimal.Decimal, orderStatus, paymentStatus, updatedBy string) error {
	o, ok := r.orders[id]
	if !ok {
		return nil
	}
	o.TotalAmount = total
	o.OrderStatus = orderStatus
	o.PaymentStatus = paymentStatus
	o.UpdatedBy = updatedBy
	return nil
}

func (r *fakeOrderRepo) MonthlySales() ([]repository.MonthlyAmount, error) {
	totals := make(map[string]decimal.Decimal)
	var months []string
	for _, o := range r.orders {
		month := o.CreatedAt.Format("2006-01")
		if _, ok := totals[month]; !ok {
			months = append(months, month)
		}
		totals[month] = totals[month].Add(o.TotalAmount)
	}
	out := make([]repository.MonthlyAmount, 0, len(months))
	for _, m := range months {
		out = append(out, repository.MonthlyAmount{Month: m, Total: totals[m]})
	}
	return out, nil
}

func (r *fakeOrderRepo) snapshot() (map[string]*entity.Order, int) {
	out := make(map[string]*entity.Order, len(r.orders))
	for id, o := range r.orders {
		out[id] = copyOrder(o)
	}
	return out, r.seq
}

type fakeMembershipRepo struct {
	members map[string]*entity.Membership // keyed by phone
}

func newFakeMembershipRepo(members ...*entity.Membership) *fakeMembershipRepo {
	r := &fakeMembershipRepo{members: make(map[string]*entity.Membership)}
	for _, m := range members {
		cp := *m
		r.members[m.PhoneNumber] = &cp
	}
	return r
}

func (r *fakeMembershipRepo) Create(m *entity.Membership) error {
	cp := *m
	r.members[m.PhoneNumber] = &cp
	return nil
}

func (r *fakeMembershipRepo) GetByID(id string) (*entity.Membership, error) {
	for _, m := range r.members {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMembershipRepo) GetByPhone(phone string) (*entity.Membership, error) {
	m, ok := r.members[phone]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMembershipRepo) GetActiveByPhone(phone string) (*entity.Membership, error) {
	m, ok := r.members[phone]
	if !ok || !m.IsActive {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMembershipRepo) List(repository.MembershipFilter) ([]*entity.Membership, error) {
	out := make([]*entity.Membership, 0, len(r.members))
	for _, m := range r.members {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeMembershipRepo) UpdatePoints(phone string, points decimal.Decimal, invoices []string, updatedBy string) (*entity.Membership, error) {
	m, ok := r.members[phone]
	if !ok {
		return nil, nil
	}
	m.Points = points
	m.Invoices = append([]string(nil), invoices...)
	m.UpdatedBy = updatedBy
	cp := *m
	return &cp, nil
}

func (r *fakeMembershipRepo) Update(m *entity.Membership) error {
	cp := *m
	r.members[m.PhoneNumber] = &cp
	return nil
}

// fakeTxRunner hands the shared fakes to the callback and rolls their state
// back when it fails, matching the commit-or-rollback contract.
type fakeTxRunner struct {
	orders   *fakeOrderRepo
	products *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.OrderRepository, repository.ProductRepository) error) error {
	orderSnap, seq := r.orders.snapshot()
	productSnap := r.products.snapshot()
	if err := fn(r.orders, r.products); err != nil {
		r.orders.orders = orderSnap
		r.orders.seq = seq
		r.products.products = productSnap
		return err
	}
	return nil
}

type fakeExporter struct {
	path   string
	orders []*entity.Order
}

func (e *fakeExporter) Export(orders []*entity.Order) (string, error) {
	e.orders = orders
	return e.path, nil
}
