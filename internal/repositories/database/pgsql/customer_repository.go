package pgsql

import (
	"context"
	"fmt"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT customer_id, name, phone_number, `+auditColumns+`
		FROM customers
		ORDER BY name;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	customers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Customer, error) {
		var c domain.Customer
		err := row.Scan(&c.CustomerID, &c.Name, &c.PhoneNumber,
			&c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan customers: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO customers (name, phone_number, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING customer_id;
	`, customer.Name, customer.PhoneNumber,
		customer.CreatedAt, customer.CreatedBy, customer.LastUpdatedAt, customer.LastUpdatedBy,
	).Scan(&customer.CustomerID)
	if err != nil {
		return mapPgError(err, "failed to save customer")
	}
	return nil
}

type PgxMerchantRepository struct {
	BaseRepository
}

func newPgxMerchantRepository(pool *pgxpool.Pool) portsrepo.MerchantRepositoryFacade {
	return &PgxMerchantRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MerchantRepositoryFacade = (*PgxMerchantRepository)(nil)

func (r *PgxMerchantRepository) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT merchant_id, name, `+auditColumns+`
		FROM merchants
		ORDER BY name;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query merchants: %w", err)
	}
	merchants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Merchant, error) {
		var m domain.Merchant
		err := row.Scan(&m.MerchantID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan merchants: %w", err)
	}
	return merchants, nil
}

func (r *PgxMerchantRepository) SaveMerchant(ctx context.Context, merchant *domain.Merchant) error {
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO merchants (name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING merchant_id;
	`, merchant.Name, merchant.CreatedAt, merchant.CreatedBy, merchant.LastUpdatedAt, merchant.LastUpdatedBy,
	).Scan(&merchant.MerchantID)
	if err != nil {
		return mapPgError(err, "failed to save merchant")
	}
	return nil
}
