package accounting_test

import (
	"testing"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestCalculateCommission(t *testing.T) {
	tests := []struct {
		name           string
		jobOwner       domain.JobOwner
		wantProfit     string
		wantCommission string
		wantNetProfit  string
	}{
		{name: "in-house earns five percent", jobOwner: domain.JobOwnerInHouse, wantProfit: "600", wantCommission: "30", wantNetProfit: "570"},
		{name: "personal earns twenty percent", jobOwner: domain.JobOwnerPersonal, wantProfit: "600", wantCommission: "120", wantNetProfit: "480"},
		{name: "no owner earns nothing", jobOwner: domain.JobOwnerNone, wantProfit: "600", wantCommission: "0", wantNetProfit: "600"},
		{name: "unknown owner earns nothing", jobOwner: domain.JobOwner("Partner"), wantProfit: "600", wantCommission: "0", wantNetProfit: "600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.CalculateCommission(dec("1000"), dec("400"), tt.jobOwner)
			assert.Equal(t, tt.wantProfit, got.Profit.String())
			assert.Equal(t, tt.wantCommission, got.StaffCommission.String())
			assert.Equal(t, tt.wantNetProfit, got.NetProfit.String())
		})
	}
}

func TestCalculateCommission_MissingInputsAreZero(t *testing.T) {
	got := accounting.CalculateCommission(decimal.Decimal{}, decimal.Decimal{}, domain.JobOwnerPersonal)
	assert.True(t, got.Profit.IsZero())
	assert.True(t, got.StaffCommission.IsZero())
	assert.True(t, got.NetProfit.IsZero())
}

func TestCalculateCommission_LossKeepsSign(t *testing.T) {
	got := accounting.CalculateCommission(dec("100"), dec("300"), domain.JobOwnerPersonal)
	assert.Equal(t, "-200", got.Profit.String())
	assert.Equal(t, "-40", got.StaffCommission.String())
	assert.Equal(t, "-160", got.NetProfit.String())
}

func TestApplyCommission(t *testing.T) {
	record := domain.GeneralRecord{
		ServiceCharge: dec("1000"),
		ExpenseCost:   dec("400"),
		JobOwner:      domain.JobOwnerInHouse,
	}
	accounting.ApplyCommission(&record)
	assert.Equal(t, "600", record.Profit.String())
	assert.Equal(t, "30", record.StaffCommission.String())
	assert.Equal(t, "570", record.NetProfit.String())
}

func ledgerFixture() ([]domain.VendorTransaction, []domain.VendorPayment) {
	transactions := []domain.VendorTransaction{
		{RecordID: 1, VendorName: "Acme", Category: "Laptops", Quantity: 3, ServiceCharge: dec("100"), Description: "GOODS IN from acme", DateIn: date(2025, time.March, 4)},
		{RecordID: 2, VendorName: "acme ", Category: "laptops", Quantity: 2, ServiceCharge: dec("50"), Description: "goods out", DateIn: date(2025, time.April, 1)},
		{RecordID: 3, VendorName: "Beta", Category: "Phones", Quantity: 5, ServiceCharge: dec("10"), Description: "Goods In", DateIn: date(2025, time.March, 9)},
		{RecordID: 4, VendorName: "Acme", Category: "Laptops", Quantity: 7, ServiceCharge: dec("1"), Description: "GOODS IN then GOODS OUT", DateIn: date(2025, time.March, 9)},
		{RecordID: 5, VendorName: "Acme", Category: "Laptops", Quantity: 9, ServiceCharge: dec("1"), Description: "repair", DateIn: nil},
	}
	payments := []domain.VendorPayment{
		{PaymentID: 1, VendorName: "ACME", Amount: dec("500"), Type: domain.PaymentSent},
		{PaymentID: 2, VendorName: "Acme", Amount: dec("200"), Type: domain.PaymentReceived},
		{PaymentID: 3, VendorName: "Beta", Amount: dec("40"), Type: domain.PaymentSent},
	}
	return transactions, payments
}

func TestAggregateVendorLedger_PartitionsAndTotals(t *testing.T) {
	transactions, payments := ledgerFixture()

	ledger := accounting.AggregateVendorLedger(transactions, payments, domain.LedgerFilter{VendorName: "Acme"})
	s := ledger.Summary

	assert.Equal(t, int64(3), s.TotalGoodsInQty)
	assert.Equal(t, int64(2), s.TotalGoodsOutQty)
	assert.Equal(t, "300", s.TotalDebit.String())
	assert.Equal(t, "100", s.TotalCredit.String())
	assert.Equal(t, "500", s.TotalSent.String())
	assert.Equal(t, "200", s.TotalReceived.String())
	require.Len(t, ledger.GoodsIn, 1)
	require.Len(t, ledger.GoodsOut, 1)
	assert.Equal(t, int64(1), ledger.GoodsIn[0].RecordID)
	assert.Equal(t, int64(2), ledger.GoodsOut[0].RecordID)
	assert.Len(t, ledger.Payments, 2)
}

func TestAggregateVendorLedger_RowsWithBothOrNeitherTagAreExcluded(t *testing.T) {
	transactions, _ := ledgerFixture()

	ledger := accounting.AggregateVendorLedger(transactions[3:], nil, domain.LedgerFilter{})

	assert.Empty(t, ledger.GoodsIn)
	assert.Empty(t, ledger.GoodsOut)
	assert.Equal(t, int64(0), ledger.Summary.TotalGoodsInQty)
	assert.True(t, ledger.Summary.TotalDebit.IsZero())
}

func TestAggregateVendorLedger_NetBalance(t *testing.T) {
	goods := []domain.VendorTransaction{
		{VendorName: "Acme", Quantity: 3, ServiceCharge: dec("100"), Description: "GOODS OUT"},
		{VendorName: "Acme", Quantity: 1, ServiceCharge: dec("100"), Description: "GOODS IN"},
	}
	sent := domain.VendorPayment{VendorName: "Acme", Amount: dec("500"), Type: domain.PaymentSent}
	received := domain.VendorPayment{VendorName: "Acme", Amount: dec("200"), Type: domain.PaymentReceived}

	tests := []struct {
		name     string
		payments []domain.VendorPayment
		filter   domain.LedgerFilter
		want     string
	}{
		{name: "vendor with sent and received", payments: []domain.VendorPayment{sent, received}, filter: domain.LedgerFilter{VendorName: "Acme"}, want: "500"},
		{name: "vendor with sent only", payments: []domain.VendorPayment{sent}, filter: domain.LedgerFilter{VendorName: "Acme"}, want: "700"},
		{name: "vendor with received only", payments: []domain.VendorPayment{received}, filter: domain.LedgerFilter{VendorName: "Acme"}, want: "0"},
		{name: "vendor without payments", payments: nil, filter: domain.LedgerFilter{VendorName: "Acme"}, want: "200"},
		{name: "no vendor falls to default", payments: []domain.VendorPayment{{VendorName: "Zed", Amount: dec("100"), Type: domain.PaymentSent}}, filter: domain.LedgerFilter{}, want: "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := accounting.AggregateVendorLedger(goods, tt.payments, tt.filter)
			require.NotNil(t, ledger.Summary.NetBalance)
			assert.Equal(t, tt.want, ledger.Summary.NetBalance.String())
		})
	}
}

func TestAggregateVendorLedger_CategoryOrMonthOmitsNetBalance(t *testing.T) {
	transactions, payments := ledgerFixture()

	for _, filter := range []domain.LedgerFilter{
		{Category: "Laptops"},
		{VendorName: "Acme", Category: "laptops"},
		{Month: "March 2025"},
		{VendorName: "Acme", Month: "March 2025"},
	} {
		ledger := accounting.AggregateVendorLedger(transactions, payments, filter)
		assert.Nil(t, ledger.Summary.NetBalance, "filter %+v", filter)
	}
}

func TestAggregateVendorLedger_CategoryAndMonthFilters(t *testing.T) {
	transactions, payments := ledgerFixture()

	byCategory := accounting.AggregateVendorLedger(transactions, payments, domain.LedgerFilter{Category: "LAPTOPS"})
	assert.Equal(t, int64(3), byCategory.Summary.TotalGoodsInQty)
	assert.Equal(t, int64(2), byCategory.Summary.TotalGoodsOutQty)
	// payments ignore the category filter
	assert.Equal(t, "540", byCategory.Summary.TotalSent.String())

	byMonth := accounting.AggregateVendorLedger(transactions, payments, domain.LedgerFilter{Month: "March 2025"})
	assert.Equal(t, int64(8), byMonth.Summary.TotalGoodsInQty)
	assert.Equal(t, int64(0), byMonth.Summary.TotalGoodsOutQty)
	assert.Equal(t, "350", byMonth.Summary.TotalDebit.String())
}

func TestAggregateVendorLedger_Idempotent(t *testing.T) {
	transactions, payments := ledgerFixture()
	filter := domain.LedgerFilter{VendorName: "acme"}

	first := accounting.AggregateVendorLedger(transactions, payments, filter)
	second := accounting.AggregateVendorLedger(transactions, payments, filter)

	assert.Equal(t, first, second)
}

func TestAggregateVendorLedger_EmptyInput(t *testing.T) {
	ledger := accounting.AggregateVendorLedger(nil, nil, domain.LedgerFilter{})

	require.NotNil(t, ledger.Summary.NetBalance)
	assert.True(t, ledger.Summary.NetBalance.IsZero())
	assert.NotNil(t, ledger.GoodsIn)
	assert.NotNil(t, ledger.Payments)
}

func TestCollectLedgerOptions(t *testing.T) {
	transactions, payments := ledgerFixture()

	opts := accounting.CollectLedgerOptions(transactions, payments)

	assert.Equal(t, []string{"Acme", "Beta"}, opts.Vendors)
	assert.Equal(t, []string{"Laptops", "Phones"}, opts.Categories)
	assert.Equal(t, []string{"March 2025", "April 2025"}, opts.Months)
}

func TestCollectLedgerOptions_SkipsServiceJobs(t *testing.T) {
	transactions := []domain.VendorTransaction{
		{RecordID: 1, VendorName: "Acme", Category: "Laptops", Quantity: 2, ServiceCharge: dec("100"), Description: "GOODS IN", DateIn: date(2025, time.March, 4)},
		{RecordID: 2, VendorName: "Walk-in Jane", Category: "Repairs", Quantity: 1, ServiceCharge: dec("80"), Description: "cracked screen", DateIn: date(2025, time.May, 2)},
	}

	opts := accounting.CollectLedgerOptions(transactions, nil)

	assert.Equal(t, []string{"Acme"}, opts.Vendors)
	assert.Equal(t, []string{"Laptops"}, opts.Categories)
	assert.Equal(t, []string{"March 2025"}, opts.Months)
}
