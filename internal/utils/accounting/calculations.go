package accounting

import (
	"sort"
	"strings"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Staff commission rates by job owner.
var (
	InHouseCommissionRate  = decimal.NewFromFloat(0.05)
	PersonalCommissionRate = decimal.NewFromFloat(0.20)
)

// Commission is the profit split of one general-record row.
type Commission struct {
	Profit          decimal.Decimal
	StaffCommission decimal.Decimal
	NetProfit       decimal.Decimal
}

// CalculateCommission derives profit, staff commission and net profit from a row's inputs.
// Unknown job owners earn no commission.
func CalculateCommission(serviceCharge, expenseCost decimal.Decimal, jobOwner domain.JobOwner) Commission {
	profit := serviceCharge.Sub(expenseCost)

	staffCommission := decimal.Zero
	switch jobOwner {
	case domain.JobOwnerInHouse:
		staffCommission = profit.Mul(InHouseCommissionRate)
	case domain.JobOwnerPersonal:
		staffCommission = profit.Mul(PersonalCommissionRate)
	}

	return Commission{
		Profit:          profit,
		StaffCommission: staffCommission,
		NetProfit:       profit.Sub(staffCommission),
	}
}

// ApplyCommission recomputes the derived fields of record in place.
func ApplyCommission(record *domain.GeneralRecord) {
	c := CalculateCommission(record.ServiceCharge, record.ExpenseCost, record.JobOwner)
	record.Profit = c.Profit
	record.StaffCommission = c.StaffCommission
	record.NetProfit = c.NetProfit
}

// AggregateVendorLedger filters the goods movements and payments by filter and
// totals them. It has no side effects and never fails.
func AggregateVendorLedger(transactions []domain.VendorTransaction, payments []domain.VendorPayment, filter domain.LedgerFilter) domain.VendorLedger {
	ledger := domain.VendorLedger{
		GoodsIn:  []domain.VendorTransaction{},
		GoodsOut: []domain.VendorTransaction{},
		Payments: []domain.VendorPayment{},
	}
	summary := domain.LedgerSummary{
		TotalDebit:    decimal.Zero,
		TotalCredit:   decimal.Zero,
		TotalSent:     decimal.Zero,
		TotalReceived: decimal.Zero,
	}

	for _, t := range transactions {
		if !matchesTransaction(t, filter) {
			continue
		}
		switch t.Direction() {
		case domain.GoodsIn:
			ledger.GoodsIn = append(ledger.GoodsIn, t)
			summary.TotalGoodsInQty += int64(t.Quantity)
			summary.TotalDebit = summary.TotalDebit.Add(t.Value())
		case domain.GoodsOut:
			ledger.GoodsOut = append(ledger.GoodsOut, t)
			summary.TotalGoodsOutQty += int64(t.Quantity)
			summary.TotalCredit = summary.TotalCredit.Add(t.Value())
		}
	}

	// Payments carry no category, so only the vendor filter applies to them.
	for _, p := range payments {
		if filter.HasVendor() && !domain.MatchesKey(p.VendorName, filter.VendorName) {
			continue
		}
		ledger.Payments = append(ledger.Payments, p)
		switch p.Type {
		case domain.PaymentSent:
			summary.TotalSent = summary.TotalSent.Add(p.Amount)
		case domain.PaymentReceived:
			summary.TotalReceived = summary.TotalReceived.Add(p.Amount)
		}
	}

	summary.NetBalance = netBalance(summary, filter)
	ledger.Summary = summary
	return ledger
}

func matchesTransaction(t domain.VendorTransaction, filter domain.LedgerFilter) bool {
	if filter.HasVendor() && !domain.MatchesKey(t.VendorName, filter.VendorName) {
		return false
	}
	if filter.HasCategory() && !domain.MatchesKey(t.Category, filter.Category) {
		return false
	}
	if filter.HasMonth() && t.MonthLabel() != strings.TrimSpace(filter.Month) {
		return false
	}
	return true
}

// netBalance applies the balance rules in order; the first that applies wins.
//
//	category or month filter           -> no balance
//	vendor, sent > 0 and received > 0  -> credit - debit + (sent - received)
//	vendor, sent > 0                   -> credit - debit + sent
//	vendor, received > 0               -> credit - debit - received
//	otherwise                          -> credit - debit + (sent - received)
//
// Every branch that yields a value reduces to credit - debit + sent - received
// because the missing side is zero.
func netBalance(s domain.LedgerSummary, filter domain.LedgerFilter) *decimal.Decimal {
	if filter.HasCategory() || filter.HasMonth() {
		return nil
	}
	goods := s.TotalCredit.Sub(s.TotalDebit)
	hasSent := s.TotalSent.IsPositive()
	hasReceived := s.TotalReceived.IsPositive()

	var balance decimal.Decimal
	switch {
	case filter.HasVendor() && hasSent && hasReceived:
		balance = goods.Add(s.TotalSent.Sub(s.TotalReceived))
	case filter.HasVendor() && hasSent:
		balance = goods.Add(s.TotalSent)
	case filter.HasVendor() && hasReceived:
		balance = goods.Sub(s.TotalReceived)
	default:
		balance = goods.Add(s.TotalSent.Sub(s.TotalReceived))
	}
	return &balance
}

// CollectLedgerOptions lists the distinct vendors, categories and months present in the data.
// Only rows tagged as goods movements contribute; every payment contributes its vendor.
// Vendors are deduplicated by key, keeping the first spelling seen; months are in calendar order.
func CollectLedgerOptions(transactions []domain.VendorTransaction, payments []domain.VendorPayment) domain.LedgerOptions {
	vendors := newDistinct()
	categories := newDistinct()
	months := map[string]time.Time{}

	for _, t := range transactions {
		if !t.HasGoodsTag() {
			continue
		}
		vendors.add(t.VendorName)
		categories.add(t.Category)
		if t.DateIn != nil {
			label := t.MonthLabel()
			if _, ok := months[label]; !ok {
				months[label] = time.Date(t.DateIn.Year(), t.DateIn.Month(), 1, 0, 0, 0, 0, time.UTC)
			}
		}
	}
	for _, p := range payments {
		vendors.add(p.VendorName)
	}

	monthLabels := make([]string, 0, len(months))
	for label := range months {
		monthLabels = append(monthLabels, label)
	}
	sort.Slice(monthLabels, func(i, j int) bool {
		return months[monthLabels[i]].Before(months[monthLabels[j]])
	})

	return domain.LedgerOptions{
		Vendors:    vendors.sorted(),
		Categories: categories.sorted(),
		Months:     monthLabels,
	}
}

type distinct struct {
	names map[domain.VendorKey]string
}

func newDistinct() *distinct {
	return &distinct{names: map[domain.VendorKey]string{}}
}

func (d *distinct) add(name string) {
	key := domain.NewVendorKey(name)
	if key == "" {
		return
	}
	if _, ok := d.names[key]; !ok {
		d.names[key] = strings.TrimSpace(name)
	}
}

func (d *distinct) sorted() []string {
	keys := make([]string, 0, len(d.names))
	for k := range d.names {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = d.names[domain.VendorKey(k)]
	}
	return out
}
