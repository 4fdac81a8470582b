package services

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
)

// ProductReaderSvc defines read operations for the inventory
type ProductReaderSvc interface {
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)
	ListBrands(ctx context.Context) ([]string, error)
}

// ProductWriterSvc defines write operations for the inventory
type ProductWriterSvc interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error

	// DecrementStock removes stock for several products, all or nothing.
	DecrementStock(ctx context.Context, req dto.StockDecrementRequest) error
}

// ProductSvcFacade combines all product service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
