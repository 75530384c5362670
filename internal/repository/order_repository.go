package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
)

const customerIndex = "customer_id-index"

type OrderRepository struct {
	store *Store
}

func NewOrderRepository(client *dynamodb.Client, tableName string, timeout time.Duration) *OrderRepository {
	return &OrderRepository{store: NewStore(client, tableName, timeout)}
}

// EnsureIndexes establishes the orders table with its customer lookup index
// and the status/created_at index. DynamoDB has no standalone descending
// index; recency reads go through the range key with ScanIndexForward=false.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.EnsureTable(ctx,
		SecondaryIndex{Name: customerIndex, HashKey: "customer_id"},
		SecondaryIndex{Name: "status-created_at-index", HashKey: "status", RangeKey: "created_at"},
	)
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	av, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	return r.store.PutNew(ctx, av)
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	item, err := r.store.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return unmarshalOrder(item)
}

func (r *OrderRepository) UpdateFields(ctx context.Context, orderID string, fields map[string]any) (*domain.Order, error) {
	attrs, err := r.store.UpdateFields(ctx, orderID, fields)
	if err != nil {
		return nil, err
	}
	return unmarshalOrder(attrs)
}

func (r *OrderRepository) Delete(ctx context.Context, orderID string) (int, error) {
	return r.store.DeleteByID(ctx, orderID)
}

// List pages through orders in store-natural order, narrowed to one customer
// via the customer index when customerID is non-empty. limit <= 0 means no
// cap; the analytics reads use that to walk the whole ledger.
func (r *OrderRepository) List(ctx context.Context, customerID string, skip, limit int) ([]domain.Order, error) {
	var (
		items []map[string]attrValue
		err   error
	)
	if customerID != "" {
		items, err = r.store.QueryByAttr(ctx, customerIndex, "customer_id", customerID, skip, limit)
	} else {
		items, err = r.store.ScanAll(ctx, nil, skip, limit)
	}
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(items))
	for _, item := range items {
		order, err := unmarshalOrder(item)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx)
}

func unmarshalOrder(item map[string]attrValue) (*domain.Order, error) {
	var order domain.Order
	if err := attributevalue.UnmarshalMap(item, &order); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &order, nil
}
