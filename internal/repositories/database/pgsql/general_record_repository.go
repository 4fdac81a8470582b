package pgsql

import (
	"context"
	"fmt"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	"github.com/ashirovtech/shop_dashboard/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxGeneralRecordRepository struct {
	BaseRepository
}

func newPgxGeneralRecordRepository(pool *pgxpool.Pool) portsrepo.GeneralRecordRepositoryFacade {
	return &PgxGeneralRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GeneralRecordRepositoryFacade = (*PgxGeneralRecordRepository)(nil)

const recordColumns = `record_id, date_in, product_name, customer_name, description, quantity, service_charge,
	payment_method, location, job_owner, serviced_by, expense_cost, profit, staff_commission, net_profit,
	remark, date_out, category, ` + auditColumns

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optDecimal(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func toModelRecord(d domain.GeneralRecord) models.GeneralRecord {
	qty := d.Quantity
	return models.GeneralRecord{
		RecordID:        d.RecordID,
		DateIn:          d.DateIn,
		ProductName:     optString(d.ProductName),
		CustomerName:    optString(d.CustomerName),
		Description:     optString(d.Description),
		Quantity:        &qty,
		ServiceCharge:   optDecimal(d.ServiceCharge),
		PaymentMethod:   optString(d.PaymentMethod),
		Location:        optString(d.Location),
		JobOwner:        optString(string(d.JobOwner)),
		ServicedBy:      optString(d.ServicedBy),
		ExpenseCost:     optDecimal(d.ExpenseCost),
		Profit:          optDecimal(d.Profit),
		StaffCommission: optDecimal(d.StaffCommission),
		NetProfit:       optDecimal(d.NetProfit),
		Remark:          optString(string(d.Remark)),
		DateOut:         d.DateOut,
		Category:        optString(d.Category),
		AuditFields:     toModelAudit(d.AuditFields),
	}
}

// toDomainRecord reads missing numeric columns as zero.
func toDomainRecord(m models.GeneralRecord) domain.GeneralRecord {
	qty := 0
	if m.Quantity != nil {
		qty = *m.Quantity
	}
	return domain.GeneralRecord{
		RecordID:        m.RecordID,
		DateIn:          m.DateIn,
		ProductName:     derefString(m.ProductName),
		CustomerName:    derefString(m.CustomerName),
		Description:     derefString(m.Description),
		Quantity:        qty,
		ServiceCharge:   m.ServiceCharge.Decimal,
		PaymentMethod:   derefString(m.PaymentMethod),
		Location:        derefString(m.Location),
		JobOwner:        domain.JobOwner(derefString(m.JobOwner)),
		ServicedBy:      derefString(m.ServicedBy),
		ExpenseCost:     m.ExpenseCost.Decimal,
		Profit:          m.Profit.Decimal,
		StaffCommission: m.StaffCommission.Decimal,
		NetProfit:       m.NetProfit.Decimal,
		Remark:          domain.Remark(derefString(m.Remark)),
		DateOut:         m.DateOut,
		Category:        derefString(m.Category),
		AuditFields:     toDomainAudit(m.AuditFields),
	}
}

func scanRecord(row pgx.Row) (domain.GeneralRecord, error) {
	var m models.GeneralRecord
	dest := []any{&m.RecordID, &m.DateIn, &m.ProductName, &m.CustomerName, &m.Description, &m.Quantity,
		&m.ServiceCharge, &m.PaymentMethod, &m.Location, &m.JobOwner, &m.ServicedBy, &m.ExpenseCost,
		&m.Profit, &m.StaffCommission, &m.NetProfit, &m.Remark, &m.DateOut, &m.Category}
	dest = append(dest, auditDest(&m.AuditFields)...)
	if err := row.Scan(dest...); err != nil {
		return domain.GeneralRecord{}, err
	}
	return toDomainRecord(m), nil
}

func (r *PgxGeneralRecordRepository) queryRecords(ctx context.Context, query string, args ...any) ([]domain.GeneralRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query general records: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.GeneralRecord, error) {
		return scanRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan general records: %w", err)
	}
	return records, nil
}

func (r *PgxGeneralRecordRepository) FindRecordByID(ctx context.Context, recordID int64) (*domain.GeneralRecord, error) {
	record, err := scanRecord(r.Pool.QueryRow(ctx, `SELECT `+recordColumns+` FROM general_record WHERE record_id = $1;`, recordID))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("failed to find record %d", recordID))
	}
	return &record, nil
}

func (r *PgxGeneralRecordRepository) ListRecords(ctx context.Context) ([]domain.GeneralRecord, error) {
	return r.queryRecords(ctx, `SELECT `+recordColumns+` FROM general_record ORDER BY created_at DESC, record_id DESC;`)
}

func (r *PgxGeneralRecordRepository) ListOpenJobs(ctx context.Context) ([]domain.GeneralRecord, error) {
	return r.queryRecords(ctx, `
		SELECT `+recordColumns+`
		FROM general_record
		WHERE remark IS DISTINCT FROM $1
		ORDER BY created_at DESC, record_id DESC;
	`, string(domain.RemarkDelivered))
}

func (r *PgxGeneralRecordRepository) SaveRecord(ctx context.Context, record *domain.GeneralRecord) error {
	m := toModelRecord(*record)
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO general_record (date_in, product_name, customer_name, description, quantity, service_charge,
		                            payment_method, location, job_owner, serviced_by, expense_cost, profit,
		                            staff_commission, net_profit, remark, date_out, category,
		                            created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING record_id;
	`, m.DateIn, m.ProductName, m.CustomerName, m.Description, m.Quantity, m.ServiceCharge,
		m.PaymentMethod, m.Location, m.JobOwner, m.ServicedBy, m.ExpenseCost, m.Profit,
		m.StaffCommission, m.NetProfit, m.Remark, m.DateOut, m.Category,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&record.RecordID)
	if err != nil {
		return mapPgError(err, "failed to save general record")
	}
	return nil
}

func (r *PgxGeneralRecordRepository) UpdateRecord(ctx context.Context, record domain.GeneralRecord) error {
	m := toModelRecord(record)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE general_record
		SET date_in = $1, product_name = $2, customer_name = $3, description = $4, quantity = $5,
		    service_charge = $6, payment_method = $7, location = $8, job_owner = $9, serviced_by = $10,
		    expense_cost = $11, profit = $12, staff_commission = $13, net_profit = $14, remark = $15,
		    date_out = $16, category = $17, last_updated_at = $18, last_updated_by = $19
		WHERE record_id = $20;
	`, m.DateIn, m.ProductName, m.CustomerName, m.Description, m.Quantity,
		m.ServiceCharge, m.PaymentMethod, m.Location, m.JobOwner, m.ServicedBy,
		m.ExpenseCost, m.Profit, m.StaffCommission, m.NetProfit, m.Remark,
		m.DateOut, m.Category, m.LastUpdatedAt, m.LastUpdatedBy,
		m.RecordID,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update record %d", m.RecordID))
	}
	return requireRows(tag, fmt.Sprintf("record %d", m.RecordID))
}

func (r *PgxGeneralRecordRepository) DeleteRecord(ctx context.Context, recordID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM general_record WHERE record_id = $1;`, recordID)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to delete record %d", recordID))
	}
	return requireRows(tag, fmt.Sprintf("record %d", recordID))
}
