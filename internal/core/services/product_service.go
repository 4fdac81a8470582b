package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
)

// ProductService handles the inventory.
type ProductService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) *ProductService {
	return &ProductService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*ProductService)(nil)

func (s *ProductService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product", slog.Int64("product_id", productID))
		}
		return nil, fmt.Errorf("failed to get product %d: %w", productID, err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, strings.TrimSpace(params.Brand))
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.String("brand", params.Brand))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *ProductService) ListBrands(ctx context.Context) ([]string, error) {
	brands, err := s.productRepo.ListBrands(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list brands")
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	if brands == nil {
		return []string{}, nil
	}
	return brands, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name and price are required", apperrors.ErrValidation)
	}

	product := domain.Product{
		Name:         name,
		Brand:        strings.TrimSpace(req.Brand),
		Price:        req.Price,
		CostPrice:    req.CostPrice,
		Stock:        req.Stock,
		SupplierName: strings.TrimSpace(req.SupplierName),
		ImageURLs:    req.ImageURLs,
		Description:  req.Description,
		Display:      req.Display,
		RAM:          req.RAM,
		Storage:      req.Storage,
		Processor:    req.Processor,
		Category:     strings.TrimSpace(req.Category),
		AuditFields:  domain.NewAuditFields(creatorUserID, time.Now()),
	}

	if err := s.productRepo.SaveProduct(ctx, &product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("name", name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.LogInfo(ctx, "Product created", slog.Int64("product_id", product.ProductID))
	return &product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error) {
	original, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	edit := domain.BeginEdit(*original)
	applyProductUpdate(&edit.Draft, req)
	if edit.Draft.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidation)
	}
	if !edit.Dirty() {
		s.LogDebug(ctx, "Product unchanged, skipping update", slog.Int64("product_id", productID))
		return &edit.Original, nil
	}

	edit.Draft.Touch(requestingUserID, time.Now())
	if err := s.productRepo.UpdateProduct(ctx, edit.Draft); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}

	s.LogInfo(ctx, "Product updated", slog.Int64("product_id", productID))
	return &edit.Draft, nil
}

func applyProductUpdate(p *domain.Product, req dto.UpdateProductRequest) {
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Brand != nil {
		p.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.CostPrice != nil {
		p.CostPrice = *req.CostPrice
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.SupplierName != nil {
		p.SupplierName = strings.TrimSpace(*req.SupplierName)
	}
	if req.ImageURLs != nil {
		p.ImageURLs = req.ImageURLs
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Display != nil {
		p.Display = *req.Display
	}
	if req.RAM != nil {
		p.RAM = *req.RAM
	}
	if req.Storage != nil {
		p.Storage = *req.Storage
	}
	if req.Processor != nil {
		p.Processor = *req.Processor
	}
	if req.Category != nil {
		p.Category = strings.TrimSpace(*req.Category)
	}
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete product", slog.Int64("product_id", productID))
		}
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	s.LogInfo(ctx, "Product deleted", slog.Int64("product_id", productID))
	return nil
}

func (s *ProductService) DecrementStock(ctx context.Context, req dto.StockDecrementRequest) error {
	adjustments := make([]domain.StockAdjustment, 0, len(req.Items))
	seen := make(map[int64]bool, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrValidation)
		}
		if seen[item.ProductID] {
			return fmt.Errorf("%w: product %d listed more than once", apperrors.ErrValidation, item.ProductID)
		}
		seen[item.ProductID] = true
		adjustments = append(adjustments, domain.StockAdjustment{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if len(adjustments) == 0 {
		return fmt.Errorf("%w: no items to decrement", apperrors.ErrValidation)
	}

	if err := s.productRepo.DecrementStock(ctx, adjustments); err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Stock decrement rejected", slog.String("reason", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to decrement stock")
		}
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	return nil
}
