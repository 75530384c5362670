package service

import (
	"context"
	"time"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
)

// In-memory repositories mirroring the store contract: conditional insert,
// not-found on absent ids, field-map updates, insertion-order listing.

type fakeCustomerRepo struct {
	customers map[string]*domain.Customer
	seq       []string
	failWith  error
	updates   int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*domain.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.customers[c.CustomerID]; ok {
		return domain.ErrDuplicateID
	}
	cp := *c
	f.customers[c.CustomerID] = &cp
	f.seq = append(f.seq, c.CustomerID)
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	c, ok := f.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) UpdateFields(_ context.Context, id string, fields map[string]any) (*domain.Customer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.updates++
	c, ok := f.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "phone":
			c.Phone = v.(string)
		case "email":
			c.Email = v.(string)
		}
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id string) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	if _, ok := f.customers[id]; !ok {
		return 0, nil
	}
	delete(f.customers, id)
	return 1, nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]domain.Customer, 0, len(f.customers))
	for _, id := range f.seq {
		if c, ok := f.customers[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int, error) {
	return len(f.customers), f.failWith
}

type fakeProductRepo struct {
	products map[string]*domain.Product
	seq      []string
	failWith error
	updates  int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*domain.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.products[p.ProductID]; ok {
		return domain.ErrDuplicateID
	}
	cp := *p
	f.products[p.ProductID] = &cp
	f.seq = append(f.seq, p.ProductID)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) UpdateFields(_ context.Context, id string, fields map[string]any) (*domain.Product, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.updates++
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "category":
			p.Category = v.(string)
		case "price":
			p.Price = v.(float64)
		case "updated_at":
			p.UpdatedAt = v.(time.Time)
		}
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	if _, ok := f.products[id]; !ok {
		return 0, nil
	}
	delete(f.products, id)
	return 1, nil
}

func (f *fakeProductRepo) List(_ context.Context) ([]domain.ProductSummary, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]domain.ProductSummary, 0, len(f.products))
	for _, id := range f.seq {
		if p, ok := f.products[id]; ok {
			out = append(out, domain.ProductSummary{
				ProductID: p.ProductID,
				Name:      p.Name,
				Category:  p.Category,
				Price:     p.Price,
			})
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int, error) {
	return len(f.products), f.failWith
}

type fakeOrderRepo struct {
	orders   map[string]*domain.Order
	seq      []string
	failWith error
	creates  int
	updates  int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*domain.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.creates++
	if _, ok := f.orders[o.OrderID]; ok {
		return domain.ErrDuplicateID
	}
	cp := *o
	f.orders[o.OrderID] = &cp
	f.seq = append(f.seq, o.OrderID)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateFields(_ context.Context, id string, fields map[string]any) (*domain.Order, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.updates++
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			o.Status = v.(string)
		case "items":
			o.Items = v.([]domain.OrderItem)
		case "total_amount":
			o.TotalAmount = v.(float64)
		case "updated_at":
			o.UpdatedAt = v.(time.Time)
		}
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	if _, ok := f.orders[id]; !ok {
		return 0, nil
	}
	delete(f.orders, id)
	return 1, nil
}

func (f *fakeOrderRepo) List(_ context.Context, customerID string, skip, limit int) ([]domain.Order, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []domain.Order
	for _, id := range f.seq {
		o, ok := f.orders[id]
		if !ok {
			continue
		}
		if customerID != "" && o.CustomerID != customerID {
			continue
		}
		out = append(out, *o)
	}
	if skip > 0 {
		if skip >= len(out) {
			return nil, nil
		}
		out = out[skip:]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeOrderRepo) Count(_ context.Context) (int, error) {
	return len(f.orders), f.failWith
}
