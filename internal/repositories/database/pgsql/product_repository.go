package pgsql

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	"github.com/ashirovtech/shop_dashboard/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, brand, price, cost_price, stock, supplier_name, image_urls, description,
	display, ram, storage, processor, category, ` + auditColumns

func toModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:    d.ProductID,
		Name:         d.Name,
		Brand:        d.Brand,
		Price:        d.Price,
		CostPrice:    d.CostPrice,
		Stock:        d.Stock,
		SupplierName: d.SupplierName,
		ImageURLs:    nonNilStrings(d.ImageURLs),
		Description:  nonNilStrings(d.Description),
		Display:      d.Display,
		RAM:          d.RAM,
		Storage:      d.Storage,
		Processor:    d.Processor,
		Category:     d.Category,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:    m.ProductID,
		Name:         m.Name,
		Brand:        m.Brand,
		Price:        m.Price,
		CostPrice:    m.CostPrice,
		Stock:        m.Stock,
		SupplierName: m.SupplierName,
		ImageURLs:    m.ImageURLs,
		Description:  m.Description,
		Display:      m.Display,
		RAM:          m.RAM,
		Storage:      m.Storage,
		Processor:    m.Processor,
		Category:     m.Category,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var m models.Product
	dest := []any{&m.ProductID, &m.Name, &m.Brand, &m.Price, &m.CostPrice, &m.Stock, &m.SupplierName,
		&m.ImageURLs, &m.Description, &m.Display, &m.RAM, &m.Storage, &m.Processor, &m.Category}
	dest = append(dest, auditDest(&m.AuditFields)...)
	if err := row.Scan(dest...); err != nil {
		return domain.Product{}, err
	}
	return toDomainProduct(m), nil
}

func (r *PgxProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	p, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find product %d", productID))
	}
	return &p, nil
}

func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []int64) (map[int64]domain.Product, error) {
	result := make(map[int64]domain.Product, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	products, err := r.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE product_id = ANY($1);`, productIDs)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		result[p.ProductID] = p
	}
	return result, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, brand string) ([]domain.Product, error) {
	if brand == "" {
		return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY product_id;`)
	}
	return r.queryProducts(ctx, `SELECT `+productColumns+` FROM products WHERE brand = $1 ORDER BY product_id;`, brand)
}

func (r *PgxProductRepository) ListBrands(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT DISTINCT brand FROM products WHERE brand <> '' ORDER BY brand;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query brands: %w", err)
	}
	brands, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect brands: %w", err)
	}
	return brands, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	m := toModelProduct(*product)
	query := `
		INSERT INTO products (name, brand, price, cost_price, stock, supplier_name, image_urls, description,
		                      display, ram, storage, processor, category,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING product_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name, m.Brand, m.Price, m.CostPrice, m.Stock, m.SupplierName, m.ImageURLs, m.Description,
		m.Display, m.RAM, m.Storage, m.Processor, m.Category,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&product.ProductID)
	if err != nil {
		return mapPgError(err, "failed to save product")
	}
	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := toModelProduct(product)
	query := `
		UPDATE products
		SET name = $1, brand = $2, price = $3, cost_price = $4, stock = $5, supplier_name = $6,
		    image_urls = $7, description = $8, display = $9, ram = $10, storage = $11,
		    processor = $12, category = $13, last_updated_at = $14, last_updated_by = $15
		WHERE product_id = $16;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Brand, m.Price, m.CostPrice, m.Stock, m.SupplierName,
		m.ImageURLs, m.Description, m.Display, m.RAM, m.Storage,
		m.Processor, m.Category, m.LastUpdatedAt, m.LastUpdatedBy,
		m.ProductID,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update product %d", m.ProductID))
	}
	return requireRows(tag, fmt.Sprintf("product %d", m.ProductID))
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to delete product %d", productID))
	}
	return requireRows(tag, fmt.Sprintf("product %d", productID))
}

func (r *PgxProductRepository) DecrementStock(ctx context.Context, adjustments []domain.StockAdjustment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := decrementStockTx(ctx, tx, adjustments); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// decrementStockTx removes stock inside tx. Rows are locked in product ID order.
func decrementStockTx(ctx context.Context, tx pgx.Tx, adjustments []domain.StockAdjustment) error {
	ordered := slices.Clone(adjustments)
	slices.SortFunc(ordered, func(a, b domain.StockAdjustment) int {
		return cmp.Compare(a.ProductID, b.ProductID)
	})

	for _, adj := range ordered {
		tag, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - $2 WHERE product_id = $1 AND stock >= $2;`,
			adj.ProductID, adj.Quantity)
		if err != nil {
			return mapPgError(err, fmt.Sprintf("failed to decrement stock of product %d", adj.ProductID))
		}
		if tag.RowsAffected() > 0 {
			continue
		}

		var stock int
		err = tx.QueryRow(ctx, `SELECT stock FROM products WHERE product_id = $1;`, adj.ProductID).Scan(&stock)
		if err != nil {
			return mapPgError(err, fmt.Sprintf("product %d", adj.ProductID))
		}
		return fmt.Errorf("%w: product %d has %d in stock, %d requested", apperrors.ErrInsufficientStock, adj.ProductID, stock, adj.Quantity)
	}
	return nil
}
