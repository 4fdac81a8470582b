package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Sale is a completed point-of-sale transaction.
type Sale struct {
	SaleID       int64           `json:"saleID"`
	CustomerName string          `json:"customerName"`
	MerchantName string          `json:"merchantName"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
	Items        []SaleItem      `json:"items"`
	AuditFields
}

// SaleItem is one product line of a sale.
type SaleItem struct {
	SaleItemID  int64           `json:"saleItemID"`
	SaleID      int64           `json:"saleID"`
	ProductID   int64           `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// CartLine is a product and quantity requested at checkout.
type CartLine struct {
	ProductID int64
	Quantity  int
}

// NewSale prices a cart against the current products and validates it.
// products must contain every product referenced by lines.
func NewSale(customerName, merchantName string, discount decimal.Decimal, lines []CartLine, products map[int64]Product, userID string, now time.Time) (*Sale, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no item selected", apperrors.ErrValidation)
	}
	if strings.TrimSpace(merchantName) == "" {
		return nil, fmt.Errorf("%w: select a seller", apperrors.ErrValidation)
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, fmt.Errorf("%w: select a customer", apperrors.ErrValidation)
	}
	if discount.IsNegative() {
		return nil, fmt.Errorf("%w: discount cannot be negative", apperrors.ErrValidation)
	}

	seen := make(map[int64]bool, len(lines))
	items := make([]SaleItem, 0, len(lines))
	subtotal := decimal.Zero
	for _, line := range lines {
		if seen[line.ProductID] {
			return nil, fmt.Errorf("%w: product %d already added", apperrors.ErrValidation, line.ProductID)
		}
		seen[line.ProductID] = true

		product, ok := products[line.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, apperrors.ErrNotFound)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity for %s must be at least 1", apperrors.ErrValidation, product.Name)
		}
		if line.Quantity > product.Stock {
			return nil, fmt.Errorf("%w: only %d of %s in stock", apperrors.ErrInsufficientStock, product.Stock, product.Name)
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		items = append(items, SaleItem{
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.Price,
			Total:       lineTotal,
		})
	}

	if discount.GreaterThan(subtotal) {
		return nil, fmt.Errorf("%w: discount exceeds the sale subtotal", apperrors.ErrValidation)
	}

	return &Sale{
		CustomerName: customerName,
		MerchantName: merchantName,
		Subtotal:     subtotal,
		Discount:     discount,
		Total:        subtotal.Sub(discount),
		Date:         now,
		Items:        items,
		AuditFields:  NewAuditFields(userID, now),
	}, nil
}

// StockAdjustments lists the stock to remove for this sale.
func (s Sale) StockAdjustments() []StockAdjustment {
	adjustments := make([]StockAdjustment, len(s.Items))
	for i, item := range s.Items {
		adjustments[i] = StockAdjustment{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return adjustments
}

// SaleFilter narrows the sales history. Zero values mean no restriction.
type SaleFilter struct {
	Month    int // 1-12
	Year     int
	Customer string // case-insensitive substring
	Product  string // case-insensitive substring of any item's product name
}

// SaleCursor positions a page of the sales history, newest first.
type SaleCursor struct {
	Date   time.Time
	SaleID int64
}

// Label is the heading shown above a filtered sales list.
func (f SaleFilter) Label() string {
	if f.Month == 0 && f.Year == 0 {
		return "All Sales Records"
	}
	parts := make([]string, 0, 2)
	if f.Month != 0 {
		parts = append(parts, time.Month(f.Month).String())
	}
	if f.Year != 0 {
		parts = append(parts, strconv.Itoa(f.Year))
	}
	return strings.Join(parts, " ")
}

// SaleOptions are the distinct values offered by the sales history filters.
type SaleOptions struct {
	Years     []int    `json:"years"`
	Customers []string `json:"customers"`
	Products  []string `json:"products"`
}
