package repositories

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
)

// CustomerRepositoryFacade defines persistence operations for customers
type CustomerRepositoryFacade interface {
	// ListCustomers lists customers ordered by name.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// SaveCustomer inserts a customer and sets its ID.
	SaveCustomer(ctx context.Context, customer *domain.Customer) error
}

// MerchantRepositoryFacade defines persistence operations for merchants
type MerchantRepositoryFacade interface {
	ListMerchants(ctx context.Context) ([]domain.Merchant, error)
	SaveMerchant(ctx context.Context, merchant *domain.Merchant) error
}
