package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Product is an item of the shop's inventory.
type Product struct {
	ProductID    int64           `json:"productID"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	Stock        int             `json:"stock"`
	SupplierName string          `json:"supplierName"`
	ImageURLs    []string        `json:"imageURLs"`
	Description  []string        `json:"description"`
	Display      string          `json:"display"`
	RAM          string          `json:"ram"`
	Storage      string          `json:"storage"`
	Processor    string          `json:"processor"`
	Category     string          `json:"category"`
	AuditFields
}

// SameContent compares the editable fields of two products.
func (p Product) SameContent(o Product) bool {
	return p.ProductID == o.ProductID &&
		p.Name == o.Name &&
		p.Brand == o.Brand &&
		p.Price.Equal(o.Price) &&
		p.CostPrice.Equal(o.CostPrice) &&
		p.Stock == o.Stock &&
		p.SupplierName == o.SupplierName &&
		slices.Equal(p.ImageURLs, o.ImageURLs) &&
		slices.Equal(p.Description, o.Description) &&
		p.Display == o.Display &&
		p.RAM == o.RAM &&
		p.Storage == o.Storage &&
		p.Processor == o.Processor &&
		p.Category == o.Category
}

// StockAdjustment removes Quantity units from a product's stock.
type StockAdjustment struct {
	ProductID int64
	Quantity  int
}
