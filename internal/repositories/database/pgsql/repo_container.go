package pgsql

import (
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:  newPgxProductRepository(dbPool),
		CustomerRepo: newPgxCustomerRepository(dbPool),
		MerchantRepo: newPgxMerchantRepository(dbPool),
		SaleRepo:     newPgxSaleRepository(dbPool),
		RecordRepo:   newPgxGeneralRecordRepository(dbPool),
		VendorRepo:   newPgxVendorRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
