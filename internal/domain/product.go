package domain

import (
	"time"
)

type Product struct {
	ProductID string    `dynamodbav:"id"         json:"product_id"`
	Name      string    `dynamodbav:"name"       json:"name"`
	Category  string    `dynamodbav:"category"   json:"category"`
	Price     float64   `dynamodbav:"price"      json:"price"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updated_at"`
}

type CreateProductRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Name      string   `json:"name"       binding:"required"`
	Category  string   `json:"category"   binding:"required"`
	Price     *float64 `json:"price"      binding:"required,min=0"`
}

// UpdateProductRequest: nil = not supplied; a price of 0 is a valid update.
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
}

type CreateProductResponse struct {
	ProductID string `json:"product_id"`
}

// ProductSummary is the listing projection: no timestamps.
type ProductSummary struct {
	ProductID string  `dynamodbav:"id"       json:"product_id"`
	Name      string  `dynamodbav:"name"     json:"name"`
	Category  string  `dynamodbav:"category" json:"category"`
	Price     float64 `dynamodbav:"price"    json:"price"`
}
