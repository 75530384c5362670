package domain

type Customer struct {
	CustomerID string `dynamodbav:"id"    json:"customer_id"`
	Name       string `dynamodbav:"name"  json:"name"`
	Phone      string `dynamodbav:"phone" json:"phone"`
	Email      string `dynamodbav:"email" json:"email"`
}

type CreateCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Name       string `json:"name"        binding:"required"`
	Phone      string `json:"phone"       binding:"required"`
	Email      string `json:"email"       binding:"required,email"`
}

// UpdateCustomerRequest uses pointers so a zero value is still "supplied".
// nil means the field keeps its prior value.
type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

type CreateCustomerResponse struct {
	CustomerID string `json:"customer_id"`
}
