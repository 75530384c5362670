package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/events"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/handler"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/repository"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/service"
	"github.com/cloud-wave-best-zizon/backoffice-service/pkg/config"
	"github.com/cloud-wave-best-zizon/backoffice-service/pkg/middleware"
	pkgtls "github.com/cloud-wave-best-zizon/backoffice-service/pkg/tls"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	dynamoClient, err := repository.NewDynamoDBClient(cfg)
	if err != nil {
		log.Fatal("Failed to create DynamoDB client:", err)
	}

	customerRepo := repository.NewCustomerRepository(dynamoClient, cfg.CustomerTableName, cfg.OperationTimeout)
	productRepo := repository.NewProductRepository(dynamoClient, cfg.ProductTableName, cfg.OperationTimeout)
	orderRepo := repository.NewOrderRepository(dynamoClient, cfg.OrderTableName, cfg.OperationTimeout)

	// Bootstrap tables and indexes. A down store should not keep the API
	// from starting; requests will answer 503 until it comes back.
	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 30*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"customers": customerRepo.EnsureIndexes,
		"products":  productRepo.EnsureIndexes,
		"orders":    orderRepo.EnsureIndexes,
	} {
		if err := ensure(bootstrapCtx); err != nil {
			logger.Warn("Failed to ensure indexes",
				zap.String("table", name),
				zap.Error(err))
		}
	}
	cancelBootstrap()

	var publisher service.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer := events.NewKafkaProducer(cfg.KafkaBrokers, logger)
		defer producer.Close()
		publisher = producer
	}

	customerService := service.NewCustomerService(customerRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, publisher, logger)
	analyticsService := service.NewAnalyticsService(orderRepo, customerRepo, productRepo, orderRepo, logger)

	customerHandler := handler.NewCustomerHandler(customerService, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.RequestID())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/customers", customerHandler.CreateCustomer)
		v1.GET("/customers", customerHandler.ListCustomers)
		v1.GET("/customers/:id", customerHandler.GetCustomer)
		v1.PUT("/customers/:id", customerHandler.UpdateCustomer)
		v1.DELETE("/customers/:id", customerHandler.DeleteCustomer)

		v1.POST("/products", productHandler.CreateProduct)
		v1.GET("/products", productHandler.ListProducts)
		v1.GET("/products/:id", productHandler.GetProduct)
		v1.PUT("/products/:id", productHandler.UpdateProduct)
		v1.DELETE("/products/:id", productHandler.DeleteProduct)

		v1.POST("/orders", orderHandler.CreateOrder)
		v1.GET("/orders", orderHandler.ListOrders)
		v1.GET("/orders/:id", orderHandler.GetOrder)
		v1.PUT("/orders/:id", orderHandler.UpdateOrder)
		v1.DELETE("/orders/:id", orderHandler.DeleteOrder)

		v1.GET("/analytics/revenue", analyticsHandler.TotalRevenue)
		v1.GET("/analytics/top-customers", analyticsHandler.TopCustomers)
		v1.GET("/analytics/top-products", analyticsHandler.TopProduct)
		v1.GET("/analytics/counts", analyticsHandler.Counts)

		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy"})
		})
	}

	tlsConfig, err := pkgtls.LoadTLSConfig(&cfg.TLS, logger)
	if err != nil {
		log.Fatal("Failed to load TLS config:", err)
	}
	defer pkgtls.Cleanup()

	srv := &http.Server{
		Addr:      ":" + cfg.Port,
		Handler:   router,
		TLSConfig: tlsConfig,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port))
		var err error
		if tlsConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
