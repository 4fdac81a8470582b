package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Classification tags carried in a general record's description.
const (
	GoodsInTag  = "GOODS IN"
	GoodsOutTag = "GOODS OUT"
)

// GoodsDirection classifies a vendor transaction.
type GoodsDirection int

const (
	GoodsUnclassified GoodsDirection = iota
	GoodsIn
	GoodsOut
)

// VendorKey is the normalized identity of a vendor: its name trimmed and case-folded.
// Vendors are not stored on their own; two rows belong to the same vendor when their keys match.
type VendorKey string

// NewVendorKey derives the key for a vendor name.
func NewVendorKey(name string) VendorKey {
	return VendorKey(cases.Fold().String(strings.TrimSpace(name)))
}

// MatchesKey compares two free-text values the same way vendor names are compared.
func MatchesKey(a, b string) bool {
	return NewVendorKey(a) == NewVendorKey(b)
}

// VendorTransaction is a general record read as goods moved to or from a vendor.
type VendorTransaction struct {
	RecordID      int64           `json:"recordID"`
	VendorName    string          `json:"vendorName"`
	ProductName   string          `json:"productName"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	ServiceCharge decimal.Decimal `json:"serviceCharge"`
	Description   string          `json:"description"`
	DateIn        *time.Time      `json:"dateIn"`
}

// Direction classifies the row by the tags in its description.
// A row carrying both tags, or neither, is unclassified.
func (t VendorTransaction) Direction() GoodsDirection {
	desc := strings.ToUpper(t.Description)
	in := strings.Contains(desc, GoodsInTag)
	out := strings.Contains(desc, GoodsOutTag)
	switch {
	case in && !out:
		return GoodsIn
	case out && !in:
		return GoodsOut
	default:
		return GoodsUnclassified
	}
}

// HasGoodsTag reports whether the description carries either goods tag.
// Rows without one are service jobs, not vendor movements.
func (t VendorTransaction) HasGoodsTag() bool {
	desc := strings.ToUpper(t.Description)
	return strings.Contains(desc, GoodsInTag) || strings.Contains(desc, GoodsOutTag)
}

// Value is quantity times unit service charge.
func (t VendorTransaction) Value() decimal.Decimal {
	return t.ServiceCharge.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// MonthLabel is the "Month Year" label of the date in, or "" when undated.
func (t VendorTransaction) MonthLabel() string {
	if t.DateIn == nil {
		return ""
	}
	return MonthLabel(*t.DateIn)
}

// PaymentType is the direction of money between the shop and a vendor.
type PaymentType string

const (
	PaymentSent     PaymentType = "sent"
	PaymentReceived PaymentType = "received"
)

// VendorPayment is money sent to or received from a vendor.
type VendorPayment struct {
	PaymentID   int64           `json:"paymentID"`
	VendorName  string          `json:"vendorName"`
	Amount      decimal.Decimal `json:"amount"`
	Type        PaymentType     `json:"type"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	AuditFields
}

// SameContent compares the editable fields of two payments.
func (p VendorPayment) SameContent(o VendorPayment) bool {
	return p.PaymentID == o.PaymentID &&
		p.VendorName == o.VendorName &&
		p.Amount.Equal(o.Amount) &&
		p.Type == o.Type &&
		p.Description == o.Description &&
		p.Date.Equal(o.Date)
}

// LedgerFilter is the vendor/category/month selection of the ledger page.
// Empty fields mean no restriction.
type LedgerFilter struct {
	VendorName string
	Category   string
	Month      string // "January 2025"
}

func (f LedgerFilter) HasVendor() bool   { return strings.TrimSpace(f.VendorName) != "" }
func (f LedgerFilter) HasCategory() bool { return strings.TrimSpace(f.Category) != "" }
func (f LedgerFilter) HasMonth() bool    { return strings.TrimSpace(f.Month) != "" }

// LedgerSummary holds the ledger figures. Amounts are unrounded.
// NetBalance is nil when a category or month filter is active.
type LedgerSummary struct {
	TotalGoodsInQty  int64            `json:"totalGoodsInQty"`
	TotalGoodsOutQty int64            `json:"totalGoodsOutQty"`
	TotalDebit       decimal.Decimal  `json:"totalDebit"`
	TotalCredit      decimal.Decimal  `json:"totalCredit"`
	TotalSent        decimal.Decimal  `json:"totalSent"`
	TotalReceived    decimal.Decimal  `json:"totalReceived"`
	NetBalance       *decimal.Decimal `json:"netBalance"`
}

// VendorLedger is the aggregated ledger together with the rows it was computed from.
type VendorLedger struct {
	Summary  LedgerSummary       `json:"summary"`
	GoodsIn  []VendorTransaction `json:"goodsIn"`
	GoodsOut []VendorTransaction `json:"goodsOut"`
	Payments []VendorPayment     `json:"payments"`
}

// LedgerOptions are the distinct values offered by the ledger filters.
type LedgerOptions struct {
	Vendors    []string `json:"vendors"`
	Categories []string `json:"categories"`
	Months     []string `json:"months"`
}
