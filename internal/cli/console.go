package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/service"
)

const opTimeout = 10 * time.Second

// Console is the interactive back-office menu. It is a thin adapter over the
// same services the API uses; the only extra behavior is the catalog lookup
// when composing order items, so prices are snapshotted from the store
// rather than typed in.
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	customers *service.CustomerService
	products  *service.ProductService
	orders    *service.OrderService
	analytics *service.AnalyticsService
}

func NewConsole(in io.Reader, out io.Writer, customers *service.CustomerService, products *service.ProductService, orders *service.OrderService, analytics *service.AnalyticsService) *Console {
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		customers: customers,
		products:  products,
		orders:    orders,
		analytics: analytics,
	}
}

func (c *Console) Run() {
	for {
		c.printf("\n=== Shop Management System (Main Menu) ===\n")
		c.printf("1. Customers\n2. Products\n3. Orders\n4. Exit\n")
		switch c.prompt("Choose an option: ") {
		case "1":
			c.customersMenu()
		case "2":
			c.productsMenu()
		case "3":
			c.ordersMenu()
		case "4":
			c.printf("Exiting...\n")
			return
		default:
			c.printf("Invalid choice, please try again.\n")
		}
	}
}

func (c *Console) customersMenu() {
	for {
		c.printf("\n=== Customers Management ===\n")
		c.printf("1. Create customer\n2. Show all customers\n3. Find customer by ID\n4. Update customer\n5. Delete customer\n6. Back\n")
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)

		switch c.prompt("Choose an option: ") {
		case "1":
			req := domain.CreateCustomerRequest{
				CustomerID: c.prompt("Customer ID: "),
				Name:       c.prompt("Name: "),
				Phone:      c.prompt("Phone: "),
				Email:      c.prompt("Email: "),
			}
			if _, err := c.customers.CreateCustomer(ctx, req); err != nil {
				c.report(err)
			} else {
				c.printf("Customer created successfully\n")
			}
		case "2":
			customers, err := c.customers.ListCustomers(ctx)
			if err != nil {
				c.report(err)
				break
			}
			for _, cu := range customers {
				c.printf("%s | %s | %s | %s\n", cu.CustomerID, cu.Name, cu.Phone, cu.Email)
			}
		case "3":
			customer, err := c.customers.GetCustomer(ctx, c.prompt("Customer ID: "))
			if err != nil {
				c.report(err)
				break
			}
			c.printf("%s | %s | %s | %s\n", customer.CustomerID, customer.Name, customer.Phone, customer.Email)
		case "4":
			id := c.prompt("Customer ID: ")
			req := domain.UpdateCustomerRequest{
				Name:  optional(c.prompt("New name (Enter to keep): ")),
				Phone: optional(c.prompt("New phone (Enter to keep): ")),
				Email: optional(c.prompt("New email (Enter to keep): ")),
			}
			customer, err := c.customers.UpdateCustomer(ctx, id, req)
			if err != nil {
				c.report(err)
				break
			}
			c.printf("Updated: %s | %s | %s | %s\n", customer.CustomerID, customer.Name, customer.Phone, customer.Email)
		case "5":
			deleted, err := c.customers.DeleteCustomer(ctx, c.prompt("Customer ID: "))
			if err != nil {
				c.report(err)
				break
			}
			if deleted > 0 {
				c.printf("Deleted\n")
			} else {
				c.printf("Customer not found\n")
			}
		case "6":
			cancel()
			return
		default:
			c.printf("Invalid choice, please try again.\n")
		}
		cancel()
	}
}

func (c *Console) productsMenu() {
	for {
		c.printf("\n=== Products Management ===\n")
		c.printf("1. Create product\n2. Show all products\n3. Find product by ID\n4. Update product\n5. Delete product\n6. Back\n")
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)

		switch c.prompt("Choose an option: ") {
		case "1":
			id := c.prompt("Product ID: ")
			name := c.prompt("Name: ")
			category := c.prompt("Category: ")
			price, err := strconv.ParseFloat(c.prompt("Price: "), 64)
			if err != nil || price < 0 {
				c.printf("Price must be a non-negative number\n")
				break
			}
			req := domain.CreateProductRequest{ProductID: id, Name: name, Category: category, Price: &price}
			if _, err := c.products.CreateProduct(ctx, req); err != nil {
				c.report(err)
			} else {
				c.printf("Product created successfully\n")
			}
		case "2":
			products, err := c.products.ListProducts(ctx)
			if err != nil {
				c.report(err)
				break
			}
			for _, p := range products {
				c.printf("%s | %s | %s | %.2f\n", p.ProductID, p.Name, p.Category, p.Price)
			}
		case "3":
			product, err := c.products.GetProduct(ctx, c.prompt("Product ID: "))
			if err != nil {
				c.report(err)
				break
			}
			c.printf("%s | %s | %s | %.2f\n", product.ProductID, product.Name, product.Category, product.Price)
		case "4":
			id := c.prompt("Product ID: ")
			req := domain.UpdateProductRequest{
				Name:     optional(c.prompt("New name (Enter to keep): ")),
				Category: optional(c.prompt("New category (Enter to keep): ")),
			}
			if raw := c.prompt("New price (Enter to keep): "); raw != "" {
				price, err := strconv.ParseFloat(raw, 64)
				if err != nil || price < 0 {
					c.printf("Price must be a non-negative number\n")
					break
				}
				req.Price = &price
			}
			product, err := c.products.UpdateProduct(ctx, id, req)
			if err != nil {
				c.report(err)
				break
			}
			c.printf("Updated: %s | %s | %s | %.2f\n", product.ProductID, product.Name, product.Category, product.Price)
		case "5":
			deleted, err := c.products.DeleteProduct(ctx, c.prompt("Product ID: "))
			if err != nil {
				c.report(err)
				break
			}
			if deleted > 0 {
				c.printf("Deleted\n")
			} else {
				c.printf("Product not found\n")
			}
		case "6":
			cancel()
			return
		default:
			c.printf("Invalid choice, please try again.\n")
		}
		cancel()
	}
}

func (c *Console) ordersMenu() {
	for {
		c.printf("\n=== Orders Management ===\n")
		c.printf("1. Create order\n2. Show all orders for a customer\n3. Find order by ID\n4. Update order status\n5. Delete order\n6. Total revenue\n7. Back\n")
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)

		switch c.prompt("Choose an option: ") {
		case "1":
			c.createOrder(ctx)
		case "2":
			orders, err := c.orders.ListOrders(ctx, c.prompt("Customer ID: "), 0, 0)
			if err != nil {
				c.report(err)
				break
			}
			for _, o := range orders {
				c.printOrder(&o)
			}
		case "3":
			order, err := c.orders.GetOrder(ctx, c.prompt("Order ID: "))
			if err != nil {
				c.report(err)
				break
			}
			c.printOrder(order)
		case "4":
			id := c.prompt("Order ID: ")
			status := c.prompt("New status (paid/shipped/cancelled): ")
			order, err := c.orders.UpdateOrder(ctx, id, domain.UpdateOrderRequest{Status: &status})
			if err != nil {
				c.report(err)
				break
			}
			c.printOrder(order)
		case "5":
			deleted, err := c.orders.DeleteOrder(ctx, c.prompt("Order ID: "))
			if err != nil {
				c.report(err)
				break
			}
			if deleted > 0 {
				c.printf("Deleted\n")
			} else {
				c.printf("Order not found\n")
			}
		case "6":
			revenue, err := c.analytics.TotalRevenue(ctx)
			if err != nil {
				c.report(err)
				break
			}
			c.printf("Total revenue: %.2f\n", revenue)
		case "7":
			cancel()
			return
		default:
			c.printf("Invalid choice, please try again.\n")
		}
		cancel()
	}
}

func (c *Console) createOrder(ctx context.Context) {
	orderID := c.prompt("Order ID: ")
	customerID := c.prompt("Customer ID: ")

	var items []domain.OrderItemInput
	for {
		productID := c.prompt("Product ID (or press Enter to finish): ")
		if productID == "" {
			break
		}

		product, err := c.products.GetProduct(ctx, productID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.printf("Product with ID %s not found\n", productID)
				continue
			}
			c.report(err)
			return
		}

		qty, err := strconv.Atoi(c.prompt("Quantity: "))
		if err != nil || qty < 0 {
			c.printf("Quantity must be a non-negative integer\n")
			continue
		}

		// Price and name come from the catalog, not the operator.
		price := product.Price
		items = append(items, domain.OrderItemInput{
			ProductID:   productID,
			ProductName: product.Name,
			Quantity:    &qty,
			Price:       &price,
		})
	}

	req := domain.CreateOrderRequest{OrderID: orderID, CustomerID: customerID, Items: items}
	if _, err := c.orders.CreateOrder(ctx, req); err != nil {
		c.report(err)
		return
	}
	c.printf("Order created successfully\n")
}

func (c *Console) printOrder(o *domain.Order) {
	c.printf("%s | customer %s | %s | total %.2f\n", o.OrderID, o.CustomerID, o.Status, o.TotalAmount)
	for _, it := range o.Items {
		c.printf("  - %s x%d @ %.2f\n", it.ProductID, it.Quantity, it.Price)
	}
}

func (c *Console) prompt(label string) string {
	c.printf("%s", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) report(err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.printf("Not found\n")
	case errors.Is(err, domain.ErrDuplicateID):
		c.printf("Error: ID already exists\n")
	case errors.Is(err, domain.ErrInvalidItem), errors.Is(err, domain.ErrInvalidInput):
		c.printf("Error: %v\n", err)
	case errors.Is(err, domain.ErrUnavailable):
		c.printf("Error: store unavailable, try again\n")
	default:
		c.printf("Error: %v\n", err)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
