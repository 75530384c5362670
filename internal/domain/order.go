package domain

import (
	"fmt"
	"time"
)

// StatusPaid is the status every new order starts in. Status is free-form
// after creation; there is no enforced state machine.
const StatusPaid = "paid"

type Order struct {
	OrderID     string      `dynamodbav:"id"           json:"order_id"`
	CustomerID  string      `dynamodbav:"customer_id"  json:"customer_id"`
	Items       []OrderItem `dynamodbav:"items"        json:"items"`
	TotalAmount float64     `dynamodbav:"total_amount" json:"total_amount"`
	Status      string      `dynamodbav:"status"       json:"status"`
	CreatedAt   time.Time   `dynamodbav:"created_at"   json:"created_at"`
	UpdatedAt   time.Time   `dynamodbav:"updated_at"   json:"updated_at"`
}

type OrderItem struct {
	ProductID   string  `dynamodbav:"product_id"             json:"product_id"`
	ProductName string  `dynamodbav:"product_name,omitempty" json:"product_name,omitempty"`
	Quantity    int     `dynamodbav:"quantity"               json:"quantity"`
	Price       float64 `dynamodbav:"price"                  json:"price"`
}

// OrderItemInput is the wire form of a line item. Quantity and Price are
// pointers so absence is distinguishable: a missing price is invalid, a
// missing quantity defaults to 1.
type OrderItemInput struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

// CreateOrderRequest requires the items key to be present, but the list may be
// empty: an order with no line items is valid and totals zero.
type CreateOrderRequest struct {
	OrderID    string           `json:"order_id"    binding:"required"`
	CustomerID string           `json:"customer_id" binding:"required"`
	Items      []OrderItemInput `json:"items"       binding:"required"`
}

type UpdateOrderRequest struct {
	Status *string          `json:"status"`
	Items  []OrderItemInput `json:"items"`
}

type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// BuildItems validates raw line items and resolves defaults. Every item must
// carry a product id and a price; quantity defaults to 1 when absent. The
// whole list is checked before anything is written, so a failure never leaves
// a partial order behind.
func BuildItems(inputs []OrderItemInput) ([]OrderItem, error) {
	items := make([]OrderItem, 0, len(inputs))
	for i, in := range inputs {
		if in.ProductID == "" || in.Price == nil {
			return nil, fmt.Errorf("item %d: %w: product_id and price are required", i, ErrInvalidItem)
		}
		qty := 1
		if in.Quantity != nil {
			qty = *in.Quantity
		}
		if *in.Price < 0 || qty < 0 {
			return nil, fmt.Errorf("item %d: %w: price and quantity must be non-negative", i, ErrInvalidItem)
		}
		items = append(items, OrderItem{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    qty,
			Price:       *in.Price,
		})
	}
	return items, nil
}

// OrderTotal is the one place totals are computed. total = Σ price * quantity.
func OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
