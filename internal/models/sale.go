package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of the sales table.
type Sale struct {
	SaleID       int64           `db:"sale_id"`
	CustomerName string          `db:"customer_name"`
	MerchantName string          `db:"merchant_name"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	Discount     decimal.Decimal `db:"discount"`
	Total        decimal.Decimal `db:"total"`
	SaleDate     time.Time       `db:"sale_date"`
	AuditFields
}

// SaleItem is a row of the sale_items table.
type SaleItem struct {
	SaleItemID  int64           `db:"sale_item_id"`
	SaleID      int64           `db:"sale_id"`
	ProductID   int64           `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	Total       decimal.Decimal `db:"total"`
}
