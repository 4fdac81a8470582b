package services

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
)

// CustomerSvcFacade manages point-of-sale customers
type CustomerSvcFacade interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)
}

// MerchantSvcFacade manages sellers
type MerchantSvcFacade interface {
	ListMerchants(ctx context.Context) ([]domain.Merchant, error)
	CreateMerchant(ctx context.Context, req dto.CreateMerchantRequest, creatorUserID string) (*domain.Merchant, error)
}
