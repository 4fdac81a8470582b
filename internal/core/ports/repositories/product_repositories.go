package repositories

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
)

// ProductReader defines read operations for the inventory
type ProductReader interface {
	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// FindProductsByIDs retrieves the products with the given IDs, keyed by ID.
	// Missing IDs are absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []int64) (map[int64]domain.Product, error)

	// ListProducts lists products ordered by ID. An empty brand lists every product.
	ListProducts(ctx context.Context, brand string) ([]domain.Product, error)

	// ListBrands lists the distinct non-empty brands.
	ListBrands(ctx context.Context) ([]string, error)
}

// ProductWriter defines write operations for the inventory
type ProductWriter interface {
	// SaveProduct inserts a product and sets its ID.
	SaveProduct(ctx context.Context, product *domain.Product) error

	// UpdateProduct overwrites the editable fields of a product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, productID int64) error

	// DecrementStock removes stock for every adjustment in one transaction.
	// It fails with apperrors.ErrInsufficientStock, changing nothing, if any product lacks stock.
	DecrementStock(ctx context.Context, adjustments []domain.StockAdjustment) error
}

// ProductRepositoryFacade combines all product repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
