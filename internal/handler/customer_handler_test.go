package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memCustomerRepo struct {
	customers map[string]*domain.Customer
	seq       []string
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: map[string]*domain.Customer{}}
}

func (m *memCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	if _, ok := m.customers[c.CustomerID]; ok {
		return domain.ErrDuplicateID
	}
	cp := *c
	m.customers[c.CustomerID] = &cp
	m.seq = append(m.seq, c.CustomerID)
	return nil
}

func (m *memCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCustomerRepo) UpdateFields(_ context.Context, id string, fields map[string]any) (*domain.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "phone":
			c.Phone = v.(string)
		case "email":
			c.Email = v.(string)
		}
	}
	cp := *c
	return &cp, nil
}

func (m *memCustomerRepo) Delete(_ context.Context, id string) (int, error) {
	if _, ok := m.customers[id]; !ok {
		return 0, nil
	}
	delete(m.customers, id)
	return 1, nil
}

func (m *memCustomerRepo) List(_ context.Context) ([]domain.Customer, error) {
	out := []domain.Customer{}
	for _, id := range m.seq {
		if c, ok := m.customers[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func newCustomerRouter() *gin.Engine {
	logger := zap.NewNop()
	customerService := service.NewCustomerService(newMemCustomerRepo(), logger)
	customerHandler := NewCustomerHandler(customerService, logger)

	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.POST("/customers", customerHandler.CreateCustomer)
	v1.GET("/customers", customerHandler.ListCustomers)
	v1.GET("/customers/:id", customerHandler.GetCustomer)
	v1.PUT("/customers/:id", customerHandler.UpdateCustomer)
	v1.DELETE("/customers/:id", customerHandler.DeleteCustomer)
	return router
}

func TestCustomerLifecycleEndpoints(t *testing.T) {
	router := newCustomerRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/customers",
		`{"customer_id":"C1","name":"Dana","phone":"050-1234567","email":"dana@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/customers",
		`{"customer_id":"C1","name":"Other","phone":"050-0000000","email":"other@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Partial update: only the phone changes.
	w = doJSON(t, router, http.MethodPut, "/api/v1/customers/C1", `{"phone":"052-7654321"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var customer domain.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customer))
	assert.Equal(t, "Dana", customer.Name)
	assert.Equal(t, "052-7654321", customer.Phone)

	w = doJSON(t, router, http.MethodGet, "/api/v1/customers/none", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/customers/C1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodDelete, "/api/v1/customers/C1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCustomerValidation(t *testing.T) {
	router := newCustomerRouter()

	// Missing required fields never reach the service.
	w := doJSON(t, router, http.MethodPost, "/api/v1/customers", `{"customer_id":"C1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/customers",
		`{"customer_id":"C1","name":"Dana","phone":"050","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
