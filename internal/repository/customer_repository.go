package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
)

type CustomerRepository struct {
	store *Store
}

func NewCustomerRepository(client *dynamodb.Client, tableName string, timeout time.Duration) *CustomerRepository {
	return &CustomerRepository{store: NewStore(client, tableName, timeout)}
}

// EnsureIndexes establishes the customers table with its name and phone
// lookup indexes.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	return r.store.EnsureTable(ctx,
		SecondaryIndex{Name: "name-index", HashKey: "name"},
		SecondaryIndex{Name: "phone-index", HashKey: "phone"},
	)
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	av, err := attributevalue.MarshalMap(customer)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	return r.store.PutNew(ctx, av)
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	item, err := r.store.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	if err := attributevalue.UnmarshalMap(item, &customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	return &customer, nil
}

// UpdateFields applies the supplied fields atomically and returns the
// post-update record.
func (r *CustomerRepository) UpdateFields(ctx context.Context, customerID string, fields map[string]any) (*domain.Customer, error) {
	attrs, err := r.store.UpdateFields(ctx, customerID, fields)
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	if err := attributevalue.UnmarshalMap(attrs, &customer); err != nil {
		return nil, fmt.Errorf("unmarshal customer: %w", err)
	}
	return &customer, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID string) (int, error) {
	return r.store.DeleteByID(ctx, customerID)
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	items, err := r.store.ScanAll(ctx, []string{"id", "name", "email", "phone"}, 0, 0)
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		var customer domain.Customer
		if err := attributevalue.UnmarshalMap(item, &customer); err != nil {
			return nil, fmt.Errorf("unmarshal customer: %w", err)
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	return r.store.Count(ctx)
}
