package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/cli"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/repository"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/service"
	"github.com/cloud-wave-best-zizon/backoffice-service/pkg/config"
	"go.uber.org/zap"
)

func main() {
	// zap writes to stderr; the menus own stdout.
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for name, ensure := range map[string]func(context.Context) error{
		"customers": customerRepo.EnsureIndexes,
		"products":  productRepo.EnsureIndexes,
		"orders":    orderRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			logger.Warn("Failed to ensure indexes",
				zap.String("table", name),
				zap.Error(err))
		}
	}

	customerService := service.NewCustomerService(customerRepo, logger)
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, nil, logger)
	analyticsService := service.NewAnalyticsService(orderRepo, customerRepo, productRepo, orderRepo, logger)

	console := cli.NewConsole(os.Stdin, os.Stdout, customerService, productService, orderService, analyticsService)
	console.Run()
}
