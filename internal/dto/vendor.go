package dto

import (
	"strings"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateVendorPaymentRequest records money sent to or received from a vendor.
type CreateVendorPaymentRequest struct {
	VendorName  string          `json:"vendorName" binding:"required,max=150"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" binding:"decimal_gt0"`
	Type        string          `json:"type" binding:"required,oneof=sent received"`
	Description string          `json:"description" binding:"max=500"`
	Date        string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateVendorPaymentRequest patches a payment. Nil fields are left unchanged.
type UpdateVendorPaymentRequest struct {
	VendorName  *string          `json:"vendorName" binding:"omitempty,min=1,max=150"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string" binding:"omitempty,decimal_gt0"`
	Type        *string          `json:"type" binding:"omitempty,oneof=sent received"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Date        *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Apply patches payment with the non-nil fields of the request.
// A blank date leaves the stored date unchanged.
func (r UpdateVendorPaymentRequest) Apply(payment *domain.VendorPayment) error {
	if r.VendorName != nil {
		payment.VendorName = strings.TrimSpace(*r.VendorName)
	}
	if r.Amount != nil {
		payment.Amount = *r.Amount
	}
	if r.Type != nil {
		payment.Type = domain.PaymentType(*r.Type)
	}
	if r.Description != nil {
		payment.Description = *r.Description
	}
	if r.Date != nil {
		d, err := ParseDate(*r.Date)
		if err != nil {
			return err
		}
		if d != nil {
			payment.Date = *d
		}
	}
	return nil
}

// LedgerParams selects the vendor, category and month of the ledger. Empty means all.
type LedgerParams struct {
	Vendor   string `form:"vendor"`
	Category string `form:"category"`
	Month    string `form:"month"`
}

func (p LedgerParams) Filter() domain.LedgerFilter {
	return domain.LedgerFilter{VendorName: p.Vendor, Category: p.Category, Month: p.Month}
}

type VendorPaymentResponse struct {
	PaymentID       int64           `json:"paymentID"`
	VendorName      string          `json:"vendorName"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string"`
	FormattedAmount string          `json:"formattedAmount"`
	Type            string          `json:"type"`
	Description     string          `json:"description"`
	Date            time.Time       `json:"date"`
}

type GoodsMovementResponse struct {
	RecordID       int64           `json:"recordID"`
	VendorName     string          `json:"vendorName"`
	ProductName    string          `json:"productName"`
	Category       string          `json:"category"`
	Quantity       int             `json:"quantity"`
	ServiceCharge  decimal.Decimal `json:"serviceCharge" swaggertype:"string"`
	Value          decimal.Decimal `json:"value" swaggertype:"string"`
	FormattedValue string          `json:"formattedValue"`
	Description    string          `json:"description"`
	DateIn         *string         `json:"dateIn"`
}

// LedgerSummaryResponse carries the unrounded figures and their Naira renderings.
// NetBalance is omitted while a category or month filter is active.
type LedgerSummaryResponse struct {
	TotalGoodsInQty     int64             `json:"totalGoodsInQty"`
	TotalGoodsOutQty    int64             `json:"totalGoodsOutQty"`
	TotalDebit          decimal.Decimal   `json:"totalDebit" swaggertype:"string"`
	TotalCredit         decimal.Decimal   `json:"totalCredit" swaggertype:"string"`
	TotalSent           decimal.Decimal   `json:"totalSent" swaggertype:"string"`
	TotalReceived       decimal.Decimal   `json:"totalReceived" swaggertype:"string"`
	NetBalance          *decimal.Decimal  `json:"netBalance,omitempty" swaggertype:"string"`
	NetBalanceAvailable bool              `json:"netBalanceAvailable"`
	Formatted           map[string]string `json:"formatted"`
}

type VendorLedgerResponse struct {
	Filter   LedgerParams            `json:"filter"`
	Summary  LedgerSummaryResponse   `json:"summary"`
	GoodsIn  []GoodsMovementResponse `json:"goodsIn"`
	GoodsOut []GoodsMovementResponse `json:"goodsOut"`
	Payments []VendorPaymentResponse `json:"payments"`
}

func ToVendorPaymentResponse(p *domain.VendorPayment) VendorPaymentResponse {
	return VendorPaymentResponse{
		PaymentID:       p.PaymentID,
		VendorName:      p.VendorName,
		Amount:          p.Amount,
		FormattedAmount: utils.FormatNaira(p.Amount),
		Type:            string(p.Type),
		Description:     p.Description,
		Date:            p.Date,
	}
}

func ToVendorPaymentResponses(payments []domain.VendorPayment) []VendorPaymentResponse {
	out := make([]VendorPaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToVendorPaymentResponse(&payments[i])
	}
	return out
}

func toGoodsMovementResponses(rows []domain.VendorTransaction) []GoodsMovementResponse {
	out := make([]GoodsMovementResponse, len(rows))
	for i, t := range rows {
		value := t.Value()
		out[i] = GoodsMovementResponse{
			RecordID:       t.RecordID,
			VendorName:     t.VendorName,
			ProductName:    t.ProductName,
			Category:       t.Category,
			Quantity:       t.Quantity,
			ServiceCharge:  t.ServiceCharge,
			Value:          value,
			FormattedValue: utils.FormatNaira(value),
			Description:    t.Description,
			DateIn:         formatDate(t.DateIn),
		}
	}
	return out
}

// ToVendorLedgerResponse renders an aggregated ledger. Rounding happens only here.
func ToVendorLedgerResponse(params LedgerParams, ledger domain.VendorLedger) VendorLedgerResponse {
	s := ledger.Summary
	formatted := map[string]string{
		"totalDebit":    utils.FormatNaira(s.TotalDebit),
		"totalCredit":   utils.FormatNaira(s.TotalCredit),
		"totalSent":     utils.FormatNaira(s.TotalSent),
		"totalReceived": utils.FormatNaira(s.TotalReceived),
	}
	if s.NetBalance != nil {
		formatted["netBalance"] = utils.FormatNaira(*s.NetBalance)
	}

	return VendorLedgerResponse{
		Filter: params,
		Summary: LedgerSummaryResponse{
			TotalGoodsInQty:     s.TotalGoodsInQty,
			TotalGoodsOutQty:    s.TotalGoodsOutQty,
			TotalDebit:          s.TotalDebit,
			TotalCredit:         s.TotalCredit,
			TotalSent:           s.TotalSent,
			TotalReceived:       s.TotalReceived,
			NetBalance:          s.NetBalance,
			NetBalanceAvailable: s.NetBalance != nil,
			Formatted:           formatted,
		},
		GoodsIn:  toGoodsMovementResponses(ledger.GoodsIn),
		GoodsOut: toGoodsMovementResponses(ledger.GoodsOut),
		Payments: ToVendorPaymentResponses(ledger.Payments),
	}
}
