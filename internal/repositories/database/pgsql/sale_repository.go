package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	"github.com/ashirovtech/shop_dashboard/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = "s.sale_id, s.customer_name, s.merchant_name, s.subtotal, s.discount, s.total, s.sale_date, " +
	"s.created_at, s.created_by, s.last_updated_at, s.last_updated_by"

func toModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:       d.SaleID,
		CustomerName: d.CustomerName,
		MerchantName: d.MerchantName,
		Subtotal:     d.Subtotal,
		Discount:     d.Discount,
		Total:        d.Total,
		SaleDate:     d.Date,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

func toDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:       m.SaleID,
		CustomerName: m.CustomerName,
		MerchantName: m.MerchantName,
		Subtotal:     m.Subtotal,
		Discount:     m.Discount,
		Total:        m.Total,
		Date:         m.SaleDate,
		Items:        []domain.SaleItem{},
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}

func toDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		SaleItemID:  m.SaleItemID,
		SaleID:      m.SaleID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
	}
}

func scanSale(row pgx.Row) (domain.Sale, error) {
	var m models.Sale
	dest := []any{&m.SaleID, &m.CustomerName, &m.MerchantName, &m.Subtotal, &m.Discount, &m.Total, &m.SaleDate}
	dest = append(dest, auditDest(&m.AuditFields)...)
	if err := row.Scan(dest...); err != nil {
		return domain.Sale{}, err
	}
	return toDomainSale(m), nil
}

// CreateSale inserts the sale, its items and the stock decrements in one transaction.
func (r *PgxSaleRepository) CreateSale(ctx context.Context, sale *domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := toModelSale(*sale)
	err = tx.QueryRow(ctx, `
		INSERT INTO sales (customer_name, merchant_name, subtotal, discount, total, sale_date,
		                   created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING sale_id;
	`, m.CustomerName, m.MerchantName, m.Subtotal, m.Discount, m.Total, m.SaleDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&m.SaleID)
	if err != nil {
		return mapPgError(err, "failed to insert sale")
	}

	items := make([]domain.SaleItem, len(sale.Items))
	copy(items, sale.Items)

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO sale_items (sale_id, product_id, product_name, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING sale_item_id;
	`
	for i := range items {
		item := &items[i]
		item.SaleID = m.SaleID
		batch.Queue(itemQuery, m.SaleID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.Total).
			QueryRow(func(row pgx.Row) error {
				return row.Scan(&item.SaleItemID)
			})
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return mapPgError(err, fmt.Sprintf("failed to insert items of sale %d", m.SaleID))
	}

	if err := decrementStockTx(ctx, tx, sale.StockAdjustments()); err != nil {
		return err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	sale.SaleID = m.SaleID
	sale.Items = items
	return nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	sale, err := scanSale(r.Pool.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales s WHERE s.sale_id = $1;`, saleID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find sale %d", saleID))
	}
	sales := []domain.Sale{sale}
	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return &sales[0], nil
}

// likePattern builds an ILIKE substring pattern with the wildcards in s escaped.
func likePattern(s string) string {
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter, limit int, after *domain.SaleCursor) ([]domain.Sale, error) {
	var conditions []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Month != 0 {
		conditions = append(conditions, "EXTRACT(MONTH FROM s.sale_date) = "+arg(filter.Month))
	}
	if filter.Year != 0 {
		conditions = append(conditions, "EXTRACT(YEAR FROM s.sale_date) = "+arg(filter.Year))
	}
	if c := strings.TrimSpace(filter.Customer); c != "" {
		conditions = append(conditions, "s.customer_name ILIKE "+arg(likePattern(c)))
	}
	if p := strings.TrimSpace(filter.Product); p != "" {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM sale_items si WHERE si.sale_id = s.sale_id AND si.product_name ILIKE "+arg(likePattern(p))+")")
	}
	if after != nil {
		conditions = append(conditions, fmt.Sprintf("(s.sale_date, s.sale_id) < (%s, %s)", arg(after.Date), arg(after.SaleID)))
	}

	query := `SELECT ` + saleColumns + ` FROM sales s`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.sale_date DESC, s.sale_id DESC LIMIT " + arg(limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	sales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales: %w", err)
	}
	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// attachItems loads the items of every sale in one query.
func (r *PgxSaleRepository) attachItems(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]int64, len(sales))
	index := make(map[int64]int, len(sales))
	for i, s := range sales {
		ids[i] = s.SaleID
		index[s.SaleID] = i
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT sale_item_id, sale_id, product_id, product_name, quantity, unit_price, total
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY sale_item_id;
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to query sale items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SaleItem, error) {
		var m models.SaleItem
		err := row.Scan(&m.SaleItemID, &m.SaleID, &m.ProductID, &m.ProductName, &m.Quantity, &m.UnitPrice, &m.Total)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to scan sale items: %w", err)
	}
	for _, m := range items {
		i := index[m.SaleID]
		sales[i].Items = append(sales[i].Items, toDomainSaleItem(m))
	}
	return nil
}

// ListSaleOptions sends the three distinct-value queries as one batch.
func (r *PgxSaleRepository) ListSaleOptions(ctx context.Context) (*domain.SaleOptions, error) {
	opts := &domain.SaleOptions{Years: []int{}, Customers: []string{}, Products: []string{}}

	batch := &pgx.Batch{}
	batch.Queue(`SELECT DISTINCT EXTRACT(YEAR FROM sale_date)::int AS year FROM sales ORDER BY year DESC;`).
		Query(func(rows pgx.Rows) error {
			years, err := pgx.CollectRows(rows, pgx.RowTo[int])
			opts.Years = append(opts.Years, years...)
			return err
		})
	batch.Queue(`SELECT DISTINCT customer_name FROM sales WHERE customer_name <> '' ORDER BY customer_name;`).
		Query(func(rows pgx.Rows) error {
			customers, err := pgx.CollectRows(rows, pgx.RowTo[string])
			opts.Customers = append(opts.Customers, customers...)
			return err
		})
	batch.Queue(`SELECT DISTINCT product_name FROM sale_items WHERE product_name <> '' ORDER BY product_name;`).
		Query(func(rows pgx.Rows) error {
			products, err := pgx.CollectRows(rows, pgx.RowTo[string])
			opts.Products = append(opts.Products, products...)
			return err
		})

	if err := r.Pool.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf("failed to load sale options: %w", err)
	}
	return opts, nil
}
