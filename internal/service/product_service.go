package service

import (
	"context"
	"time"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
	UpdateFields(ctx context.Context, productID string, fields map[string]any) (*domain.Product, error)
	Delete(ctx context.Context, productID string) (int, error)
	List(ctx context.Context) ([]domain.ProductSummary, error)
}

type ProductService struct {
	productRepo ProductRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewProductService(productRepo ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	now := s.now()
	product := &domain.Product{
		ProductID: req.ProductID,
		Name:      req.Name,
		Category:  req.Category,
		Price:     *req.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("Failed to create product",
			zap.String("product_id", req.ProductID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ProductID),
		zap.Float64("price", product.Price))
	return product, nil
}

// UpdateProduct applies only the supplied fields; a price of zero counts as
// supplied. updated_at is refreshed only when something actually changes.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req domain.UpdateProductRequest) (*domain.Product, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, domain.ErrInvalidInput
		}
		fields["price"] = *req.Price
	}

	if len(fields) == 0 {
		return s.productRepo.GetByID(ctx, productID)
	}
	fields["updated_at"] = s.now()

	product, err := s.productRepo.UpdateFields(ctx, productID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product updated",
		zap.String("product_id", productID))
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID string) (int, error) {
	deleted, err := s.productRepo.Delete(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to delete product",
			zap.String("product_id", productID),
			zap.Error(err))
		return 0, err
	}
	return deleted, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.ProductSummary, error) {
	return s.productRepo.List(ctx)
}
