package repositories

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
)

// SaleReader defines read operations for the sales history
type SaleReader interface {
	// FindSaleByID retrieves a sale with its items.
	FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)

	// ListSales lists sales newest first, with their items.
	// When after is set, only sales strictly older than the cursor are returned.
	ListSales(ctx context.Context, filter domain.SaleFilter, limit int, after *domain.SaleCursor) ([]domain.Sale, error)

	// ListSaleOptions returns the distinct years, customers and products of the history.
	ListSaleOptions(ctx context.Context) (*domain.SaleOptions, error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	// CreateSale inserts the sale and its items and decrements product stock, atomically.
	// It fails with apperrors.ErrInsufficientStock if stock changed since the sale was priced.
	CreateSale(ctx context.Context, sale *domain.Sale) error
}

// SaleRepositoryFacade combines all sale repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
