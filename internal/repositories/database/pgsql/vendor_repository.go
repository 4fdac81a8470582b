package pgsql

import (
	"context"
	"fmt"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	"github.com/ashirovtech/shop_dashboard/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxVendorRepository reads vendor goods movements from the general record and owns vendor payments.
type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

const paymentColumns = "payment_id, vendor_name, amount, payment_type, description, payment_date, " + auditColumns

func toModelPayment(d domain.VendorPayment) models.VendorPayment {
	return models.VendorPayment{
		PaymentID:   d.PaymentID,
		VendorName:  d.VendorName,
		Amount:      d.Amount,
		PaymentType: string(d.Type),
		Description: d.Description,
		PaymentDate: d.Date,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

func toDomainPayment(m models.VendorPayment) domain.VendorPayment {
	return domain.VendorPayment{
		PaymentID:   m.PaymentID,
		VendorName:  m.VendorName,
		Amount:      m.Amount,
		Type:        domain.PaymentType(m.PaymentType),
		Description: m.Description,
		Date:        m.PaymentDate,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

func scanPayment(row pgx.Row) (domain.VendorPayment, error) {
	var m models.VendorPayment
	dest := []any{&m.PaymentID, &m.VendorName, &m.Amount, &m.PaymentType, &m.Description, &m.PaymentDate}
	dest = append(dest, auditDest(&m.AuditFields)...)
	if err := row.Scan(dest...); err != nil {
		return domain.VendorPayment{}, err
	}
	return toDomainPayment(m), nil
}

// ListVendorTransactions reads the general-record rows tagged GOODS IN or GOODS OUT; the vendor is the row's customer name.
// Missing numeric columns read as zero.
func (r *PgxVendorRepository) ListVendorTransactions(ctx context.Context) ([]domain.VendorTransaction, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT record_id, COALESCE(customer_name, ''), COALESCE(product_name, ''), COALESCE(category, ''),
		       COALESCE(quantity, 0), COALESCE(service_charge, 0), COALESCE(description, ''), date_in
		FROM general_record
		WHERE description ILIKE '%GOODS IN%' OR description ILIKE '%GOODS OUT%'
		ORDER BY record_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor transactions: %w", err)
	}
	transactions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VendorTransaction, error) {
		var t domain.VendorTransaction
		err := row.Scan(&t.RecordID, &t.VendorName, &t.ProductName, &t.Category,
			&t.Quantity, &t.ServiceCharge, &t.Description, &t.DateIn)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vendor transactions: %w", err)
	}
	return transactions, nil
}

func (r *PgxVendorRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.VendorPayment, error) {
	p, err := scanPayment(r.Pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM vendor_payments WHERE payment_id = $1;`, paymentID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find vendor payment %d", paymentID))
	}
	return &p, nil
}

func (r *PgxVendorRepository) ListPayments(ctx context.Context) ([]domain.VendorPayment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+paymentColumns+` FROM vendor_payments ORDER BY payment_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor payments: %w", err)
	}
	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.VendorPayment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vendor payments: %w", err)
	}
	return payments, nil
}

func (r *PgxVendorRepository) SavePayment(ctx context.Context, payment *domain.VendorPayment) error {
	m := toModelPayment(*payment)
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO vendor_payments (vendor_name, amount, payment_type, description, payment_date,
		                             created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING payment_id;
	`, m.VendorName, m.Amount, m.PaymentType, m.Description, m.PaymentDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&payment.PaymentID)
	if err != nil {
		return mapPgError(err, "failed to save vendor payment")
	}
	return nil
}

func (r *PgxVendorRepository) UpdatePayment(ctx context.Context, payment domain.VendorPayment) error {
	m := toModelPayment(payment)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE vendor_payments
		SET vendor_name = $1, amount = $2, payment_type = $3, description = $4, payment_date = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE payment_id = $8;
	`, m.VendorName, m.Amount, m.PaymentType, m.Description, m.PaymentDate,
		m.LastUpdatedAt, m.LastUpdatedBy, m.PaymentID,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update vendor payment %d", m.PaymentID))
	}
	return requireRows(tag, fmt.Sprintf("vendor payment %d", m.PaymentID))
}

func (r *PgxVendorRepository) DeletePayment(ctx context.Context, paymentID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vendor_payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to delete vendor payment %d", paymentID))
	}
	return requireRows(tag, fmt.Sprintf("vendor payment %d", paymentID))
}
