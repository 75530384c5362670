package service

import (
	"context"
	"time"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	"go.uber.org/zap"
)

const defaultListLimit = 100

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateFields(ctx context.Context, orderID string, fields map[string]any) (*domain.Order, error)
	Delete(ctx context.Context, orderID string) (int, error)
	List(ctx context.Context, customerID string, skip, limit int) ([]domain.Order, error)
}

// EventPublisher pushes order lifecycle events to the broker. Optional: a
// nil publisher disables eventing.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.Order) error
}

type OrderService struct {
	orderRepo OrderRepository
	events    EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrderService(orderRepo OrderRepository, events EventPublisher, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		events:    events,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder validates every line item before anything is written, computes
// the total server-side and inserts the order as paid.
func (s *OrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	items, err := domain.BuildItems(req.Items)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &domain.Order{
		OrderID:     req.OrderID,
		CustomerID:  req.CustomerID,
		Items:       items,
		TotalAmount: domain.OrderTotal(items),
		Status:      domain.StatusPaid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order",
			zap.String("order_id", req.OrderID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.OrderID),
		zap.String("customer_id", order.CustomerID),
		zap.Float64("total_amount", order.TotalAmount))

	if s.events != nil {
		// Best effort: the order is already persisted, a broker outage
		// must not fail the request.
		if err := s.events.PublishOrderCreated(ctx, order); err != nil {
			s.logger.Error("Failed to publish order created event",
				zap.String("order_id", order.OrderID),
				zap.Error(err))
		}
	}

	return order, nil
}

// UpdateOrder replaces status and/or items. Replacing items re-runs the same
// validation as creation and recomputes the total; the order never holds a
// total that disagrees with its items. With nothing supplied the current
// record comes back unchanged.
func (s *OrderService) UpdateOrder(ctx context.Context, orderID string, req domain.UpdateOrderRequest) (*domain.Order, error) {
	fields := map[string]any{}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Items != nil {
		items, err := domain.BuildItems(req.Items)
		if err != nil {
			return nil, err
		}
		fields["items"] = items
		fields["total_amount"] = domain.OrderTotal(items)
	}

	if len(fields) == 0 {
		return s.orderRepo.GetByID(ctx, orderID)
	}
	fields["updated_at"] = s.now()

	order, err := s.orderRepo.UpdateFields(ctx, orderID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order updated",
		zap.String("order_id", orderID),
		zap.Float64("total_amount", order.TotalAmount))
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) (int, error) {
	deleted, err := s.orderRepo.Delete(ctx, orderID)
	if err != nil {
		s.logger.Error("Failed to delete order",
			zap.String("order_id", orderID),
			zap.Error(err))
		return 0, err
	}
	return deleted, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, orderID)
}

// ListOrders pages through the ledger, optionally narrowed to one customer.
// limit defaults to 100.
func (s *OrderService) ListOrders(ctx context.Context, customerID string, skip, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.orderRepo.List(ctx, customerID, skip, limit)
}
