package services

import (
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Auth:     NewAuthService(cfg, repos.UserRepo, NewGoogleOAuthService(cfg)),
		Product:  NewProductService(repos.ProductRepo),
		Customer: NewCustomerService(repos.CustomerRepo),
		Merchant: NewMerchantService(repos.MerchantRepo),
		Sale:     NewSaleService(repos.SaleRepo, repos.ProductRepo),
		Record:   NewRecordService(repos.RecordRepo),
		Report:   NewReportService(repos.RecordRepo),
		Vendor:   NewVendorService(repos.VendorRepo),
	}
}
