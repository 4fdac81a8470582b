package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorPayment is a row of the vendor_payments table.
type VendorPayment struct {
	PaymentID   int64           `db:"payment_id"`
	VendorName  string          `db:"vendor_name"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentType string          `db:"payment_type"`
	Description string          `db:"description"`
	PaymentDate time.Time       `db:"payment_date"`
	AuditFields
}
