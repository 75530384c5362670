package service

import (
	"context"
	"sort"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	"go.uber.org/zap"
)

const defaultTopCustomers = 5

// Counter reports collection sizes for the counts endpoint.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// AnalyticsService runs the read-only aggregations over the order ledger.
// DynamoDB has no server-side aggregation pipeline, so the ledger is walked
// and reduced in memory.
type AnalyticsService struct {
	orderRepo      OrderRepository
	customerCounts Counter
	productCounts  Counter
	orderCounts    Counter
	logger         *zap.Logger
}

func NewAnalyticsService(orderRepo OrderRepository, customerCounts, productCounts, orderCounts Counter, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		orderRepo:      orderRepo,
		customerCounts: customerCounts,
		productCounts:  productCounts,
		orderCounts:    orderCounts,
		logger:         logger,
	}
}

// TotalRevenue sums total_amount across all orders. An empty ledger yields 0.
func (s *AnalyticsService) TotalRevenue(ctx context.Context) (float64, error) {
	orders, err := s.orderRepo.List(ctx, "", 0, 0)
	if err != nil {
		return 0, err
	}

	var revenue float64
	for _, order := range orders {
		revenue += order.TotalAmount
	}
	return revenue, nil
}

// TopCustomers ranks customers by order count, descending. Ties break
// ascending by customer id so the ranking is deterministic. limit defaults
// to 5; an empty ledger yields an empty slice.
func (s *AnalyticsService) TopCustomers(ctx context.Context, limit int) ([]domain.CustomerOrderCount, error) {
	if limit <= 0 {
		limit = defaultTopCustomers
	}

	orders, err := s.orderRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, order := range orders {
		counts[order.CustomerID]++
	}

	ranking := make([]domain.CustomerOrderCount, 0, len(counts))
	for customerID, n := range counts {
		ranking = append(ranking, domain.CustomerOrderCount{CustomerID: customerID, OrdersCount: n})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].OrdersCount != ranking[j].OrdersCount {
			return ranking[i].OrdersCount > ranking[j].OrdersCount
		}
		return ranking[i].CustomerID < ranking[j].CustomerID
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

// TopProduct flattens all order line items, sums quantities per product and
// returns the single best seller, or nil when the ledger holds no items.
// Ties break ascending by product id.
func (s *AnalyticsService) TopProduct(ctx context.Context) (*domain.ProductSales, error) {
	orders, err := s.orderRepo.List(ctx, "", 0, 0)
	if err != nil {
		return nil, err
	}

	sold := map[string]int{}
	for _, order := range orders {
		for _, item := range order.Items {
			sold[item.ProductID] += item.Quantity
		}
	}
	if len(sold) == 0 {
		return nil, nil
	}

	var top *domain.ProductSales
	for productID, total := range sold {
		if top == nil || total > top.TotalSold || (total == top.TotalSold && productID < top.ProductID) {
			top = &domain.ProductSales{ProductID: productID, TotalSold: total}
		}
	}
	return top, nil
}

// Counts reports how many customers, products and orders exist.
func (s *AnalyticsService) Counts(ctx context.Context) (*domain.EntityCounts, error) {
	customers, err := s.customerCounts.Count(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productCounts.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderCounts.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.EntityCounts{
		Customers: customers,
		Products:  products,
		Orders:    orders,
	}, nil
}
