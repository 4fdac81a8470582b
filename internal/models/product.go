package models

import "github.com/shopspring/decimal"

// Product is a row of the products table.
type Product struct {
	ProductID    int64           `db:"product_id"`
	Name         string          `db:"name"`
	Brand        string          `db:"brand"`
	Price        decimal.Decimal `db:"price"`
	CostPrice    decimal.Decimal `db:"cost_price"`
	Stock        int             `db:"stock"`
	SupplierName string          `db:"supplier_name"`
	ImageURLs    []string        `db:"image_urls"`  // text[]
	Description  []string        `db:"description"` // text[]
	Display      string          `db:"display"`
	RAM          string          `db:"ram"`
	Storage      string          `db:"storage"`
	Processor    string          `db:"processor"`
	Category     string          `db:"category"`
	AuditFields
}
