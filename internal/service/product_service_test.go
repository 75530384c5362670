package service

import (
	"context"
	"testing"
	"time"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func floatPtr(v float64) *float64 { return &v }

func newTestProductService(repo *fakeProductRepo, at time.Time) *ProductService {
	svc := NewProductService(repo, zap.NewNop())
	svc.now = func() time.Time { return at }
	return svc
}

func TestCreateProduct(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeProductRepo()
	svc := newTestProductService(repo, now)

	product, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		ProductID: "P1", Name: "Mug", Category: "kitchen", Price: floatPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, now, product.CreatedAt)
	assert.Equal(t, now, product.UpdatedAt)

	_, err = svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		ProductID: "P1", Name: "Other", Category: "kitchen", Price: floatPtr(1),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestUpdateProductZeroPriceIsSupplied(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeProductRepo()
	svc := newTestProductService(repo, created)

	_, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		ProductID: "P1", Name: "Mug", Category: "kitchen", Price: floatPtr(10),
	})
	require.NoError(t, err)

	// Presence, not truthiness: price 0 is a real update.
	later := created.Add(time.Hour)
	svc.now = func() time.Time { return later }
	product, err := svc.UpdateProduct(context.Background(), "P1", domain.UpdateProductRequest{
		Price: floatPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, product.Price)
	assert.Equal(t, "Mug", product.Name)
	assert.Equal(t, later, product.UpdatedAt)
	assert.Equal(t, created, product.CreatedAt)
}

func TestUpdateProductNoFields(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeProductRepo()
	svc := newTestProductService(repo, created)

	_, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		ProductID: "P1", Name: "Mug", Category: "kitchen", Price: floatPtr(10),
	})
	require.NoError(t, err)

	svc.now = func() time.Time { return created.Add(time.Hour) }
	product, err := svc.UpdateProduct(context.Background(), "P1", domain.UpdateProductRequest{})
	require.NoError(t, err)
	// Short-circuit: no write, updated_at untouched.
	assert.Equal(t, created, product.UpdatedAt)
	assert.Zero(t, repo.updates)
}

func TestUpdateProductNegativePrice(t *testing.T) {
	repo := newFakeProductRepo()
	svc := newTestProductService(repo, time.Now().UTC())

	_, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		ProductID: "P1", Name: "Mug", Category: "kitchen", Price: floatPtr(10),
	})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(context.Background(), "P1", domain.UpdateProductRequest{
		Price: floatPtr(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, repo.updates)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := newTestProductService(newFakeProductRepo(), time.Now().UTC())

	name := "Anything"
	_, err := svc.UpdateProduct(context.Background(), "missing", domain.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := newTestProductService(repo, time.Now().UTC())

	_, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		ProductID: "P1", Name: "Mug", Category: "kitchen", Price: floatPtr(10),
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteProduct(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	deleted, err = svc.DeleteProduct(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
}

func TestListProducts(t *testing.T) {
	repo := newFakeProductRepo()
	svc := newTestProductService(repo, time.Now().UTC())

	_, err := svc.CreateProduct(context.Background(), domain.CreateProductRequest{
		ProductID: "P1", Name: "Mug", Category: "kitchen", Price: floatPtr(10),
	})
	require.NoError(t, err)

	list, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	// Listing projects summaries: id, name, category, price only.
	assert.Equal(t, domain.ProductSummary{
		ProductID: "P1", Name: "Mug", Category: "kitchen", Price: 10,
	}, list[0])
}
