package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneralRecord is a row of the general_record table. Most columns are optional in the sheet.
type GeneralRecord struct {
	RecordID        int64               `db:"record_id"`
	DateIn          *time.Time          `db:"date_in"`
	ProductName     *string             `db:"product_name"`
	CustomerName    *string             `db:"customer_name"`
	Description     *string             `db:"description"`
	Quantity        *int                `db:"quantity"`
	ServiceCharge   decimal.NullDecimal `db:"service_charge"`
	PaymentMethod   *string             `db:"payment_method"`
	Location        *string             `db:"location"`
	JobOwner        *string             `db:"job_owner"`
	ServicedBy      *string             `db:"serviced_by"`
	ExpenseCost     decimal.NullDecimal `db:"expense_cost"`
	Profit          decimal.NullDecimal `db:"profit"`
	StaffCommission decimal.NullDecimal `db:"staff_commission"`
	NetProfit       decimal.NullDecimal `db:"net_profit"`
	Remark          *string             `db:"remark"`
	DateOut         *time.Time          `db:"date_out"`
	Category        *string             `db:"category"`
	AuditFields
}
