package domain

// CustomerOrderCount is one row of the top-customers ranking.
type CustomerOrderCount struct {
	CustomerID  string `json:"customer_id"`
	OrdersCount int    `json:"orders_count"`
}

// ProductSales is the top-selling product: summed quantity across all order
// line items.
type ProductSales struct {
	ProductID string `json:"product_id"`
	TotalSold int    `json:"total_sold"`
}

// EntityCounts backs the analytics counts endpoint.
type EntityCounts struct {
	Customers int `json:"customers"`
	Products  int `json:"products"`
	Orders    int `json:"orders"`
}
