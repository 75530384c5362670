package events

import (
	"time"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
)

// OrderCreatedEvent goes out on the order-events topic after an order is
// persisted.
type OrderCreatedEvent struct {
	EventID     string             `json:"event_id"`
	OrderID     string             `json:"order_id"`
	CustomerID  string             `json:"customer_id"`
	TotalAmount float64            `json:"total_amount"`
	Items       []domain.OrderItem `json:"items"`
	Status      string             `json:"status"`
	Timestamp   time.Time          `json:"timestamp"`
	RequestID   string             `json:"request_id"`
}
