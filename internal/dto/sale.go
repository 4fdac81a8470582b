package dto

import (
	"fmt"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

// CheckoutItem is one cart line.
type CheckoutItem struct {
	ProductID int64 `json:"productID" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest completes a sale. CustomerName is a customer label or "Walk-in Customer".
type CheckoutRequest struct {
	CustomerName string          `json:"customerName" binding:"required,max=150"`
	MerchantName string          `json:"merchantName" binding:"required,max=100"`
	Discount     decimal.Decimal `json:"discount" swaggertype:"string" binding:"decimal_gte0"`
	Items        []CheckoutItem  `json:"items" binding:"required,min=1,dive"`
}

// CartLines converts the request items into domain cart lines.
func (r CheckoutRequest) CartLines() []domain.CartLine {
	lines := make([]domain.CartLine, len(r.Items))
	for i, item := range r.Items {
		lines[i] = domain.CartLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return lines
}

// ListSalesParams filters and pages the sales history.
type ListSalesParams struct {
	Month     int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year      int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Customer  string `form:"customer"`
	Product   string `form:"product"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// Filter returns the domain filter for the params.
func (p ListSalesParams) Filter() domain.SaleFilter {
	return domain.SaleFilter{Month: p.Month, Year: p.Year, Customer: p.Customer, Product: p.Product}
}

type SaleItemResponse struct {
	ProductID   int64           `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	Total       decimal.Decimal `json:"total" swaggertype:"string"`
}

type SaleResponse struct {
	SaleID       int64              `json:"saleID"`
	CustomerName string             `json:"customerName"`
	MerchantName string             `json:"merchantName"`
	Subtotal     decimal.Decimal    `json:"subtotal" swaggertype:"string"`
	Discount     decimal.Decimal    `json:"discount" swaggertype:"string"`
	Total        decimal.Decimal    `json:"total" swaggertype:"string"`
	Date         time.Time          `json:"date"`
	Items        []SaleItemResponse `json:"items"`
}

// ListSalesResponse is one page of the sales history.
type ListSalesResponse struct {
	Title     string         `json:"title"`
	Sales     []SaleResponse `json:"sales"`
	NextToken *string        `json:"nextToken,omitempty"`
}

func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}
	return SaleResponse{
		SaleID:       s.SaleID,
		CustomerName: s.CustomerName,
		MerchantName: s.MerchantName,
		Subtotal:     s.Subtotal,
		Discount:     s.Discount,
		Total:        s.Total,
		Date:         s.Date,
		Items:        items,
	}
}

func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	out := make([]SaleResponse, len(sales))
	for i := range sales {
		out[i] = ToSaleResponse(&sales[i])
	}
	return out
}

// ReceiptLine is one printed line of a receipt.
type ReceiptLine struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	Total       string `json:"total"`
}

// ReceiptResponse is a sale rendered for printing, amounts formatted in Naira.
type ReceiptResponse struct {
	ReceiptNumber string        `json:"receiptNumber"`
	Date          string        `json:"date"`
	CustomerName  string        `json:"customerName"`
	MerchantName  string        `json:"merchantName"`
	Lines         []ReceiptLine `json:"lines"`
	Subtotal      string        `json:"subtotal"`
	Discount      string        `json:"discount"`
	Total         string        `json:"total"`
}

// NewReceipt renders sale as a receipt.
func NewReceipt(s *domain.Sale) ReceiptResponse {
	lines := make([]ReceiptLine, len(s.Items))
	for i, item := range s.Items {
		lines[i] = ReceiptLine{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   utils.FormatNaira(item.UnitPrice),
			Total:       utils.FormatNaira(item.Total),
		}
	}
	return ReceiptResponse{
		ReceiptNumber: receiptNumber(s),
		Date:          s.Date.Format("02 Jan 2006 15:04"),
		CustomerName:  s.CustomerName,
		MerchantName:  s.MerchantName,
		Lines:         lines,
		Subtotal:      utils.FormatNaira(s.Subtotal),
		Discount:      utils.FormatNaira(s.Discount),
		Total:         utils.FormatNaira(s.Total),
	}
}

func receiptNumber(s *domain.Sale) string {
	return fmt.Sprintf("%s-%06d", s.Date.Format("20060102"), s.SaleID)
}

// CheckoutResponse is returned by a completed checkout.
type CheckoutResponse struct {
	Sale    SaleResponse    `json:"sale"`
	Receipt ReceiptResponse `json:"receipt"`
}

func ToCheckoutResponse(s *domain.Sale) CheckoutResponse {
	return CheckoutResponse{Sale: ToSaleResponse(s), Receipt: NewReceipt(s)}
}
