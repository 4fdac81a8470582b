package services

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
)

// SaleReaderSvc defines read operations for the sales history
type SaleReaderSvc interface {
	GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)

	// ListSales returns one filtered page of the history, newest first.
	ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error)

	// GetSaleOptions returns the values offered by the history filters.
	GetSaleOptions(ctx context.Context) (*domain.SaleOptions, error)
}

// SaleWriterSvc defines the checkout
type SaleWriterSvc interface {
	// Checkout prices and validates the cart, then records the sale and decrements stock atomically.
	Checkout(ctx context.Context, req dto.CheckoutRequest, creatorUserID string) (*domain.Sale, error)
}

// SaleSvcFacade combines all sale service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}
