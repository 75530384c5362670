package service

import (
	"context"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	"go.uber.org/zap"
)

// CustomerRepository is the slice of the store the directory needs.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, customerID string) (*domain.Customer, error)
	UpdateFields(ctx context.Context, customerID string, fields map[string]any) (*domain.Customer, error)
	Delete(ctx context.Context, customerID string) (int, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type CustomerService struct {
	customerRepo CustomerRepository
	logger       *zap.Logger
}

func NewCustomerService(customerRepo CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	customer := &domain.Customer{
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("Failed to create customer",
			zap.String("customer_id", req.CustomerID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Customer created",
		zap.String("customer_id", customer.CustomerID))
	return customer, nil
}

// UpdateCustomer applies only the supplied fields. With nothing supplied it
// returns the current record untouched.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, req domain.UpdateCustomerRequest) (*domain.Customer, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}

	if len(fields) == 0 {
		return s.customerRepo.GetByID(ctx, customerID)
	}

	customer, err := s.customerRepo.UpdateFields(ctx, customerID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Customer updated",
		zap.String("customer_id", customerID))
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) (int, error) {
	deleted, err := s.customerRepo.Delete(ctx, customerID)
	if err != nil {
		s.logger.Error("Failed to delete customer",
			zap.String("customer_id", customerID),
			zap.Error(err))
		return 0, err
	}
	return deleted, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, customerID)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}
