package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(client *dynamodb.Client, tableName string, timeout time.Duration) *ProductRepository {
	return &ProductRepository{store: NewStore(client, tableName, timeout)}
}

func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.EnsureTable(ctx,
		SecondaryIndex{Name: "name-index", HashKey: "name"},
		SecondaryIndex{Name: "category-index", HashKey: "category"},
	)
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	av, err := attributevalue.MarshalMap(product)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}
	return r.store.PutNew(ctx, av)
}

func (r *ProductRepository) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	item, err := r.store.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := attributevalue.UnmarshalMap(item, &product); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) UpdateFields(ctx context.Context, productID string, fields map[string]any) (*domain.Product, error) {
	attrs, err := r.store.UpdateFields(ctx, productID, fields)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := attributevalue.UnmarshalMap(attrs, &product); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID string) (int, error) {
	return r.store.DeleteByID(ctx, productID)
}

// List returns the catalog projected to its summary form, without the
// timestamps.
func (r *ProductRepository) List(ctx context.Context) ([]domain.ProductSummary, error) {
	items, err := r.store.ScanAll(ctx, []string{"id", "name", "category", "price"}, 0, 0)
	if err != nil {
		return nil, err
	}

	products := make([]domain.ProductSummary, 0, len(items))
	for _, item := range items {
		var product domain.ProductSummary
		if err := attributevalue.UnmarshalMap(item, &product); err != nil {
			return nil, fmt.Errorf("unmarshal product: %w", err)
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx)
}
