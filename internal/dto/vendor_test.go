package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
)

func TestToVendorLedgerResponse_WithBalance(t *testing.T) {
	balance := decimal.RequireFromString("1500.505")
	ledger := domain.VendorLedger{
		Summary: domain.LedgerSummary{
			TotalDebit:  decimal.NewFromInt(300),
			TotalCredit: decimal.NewFromInt(100),
			NetBalance:  &balance,
		},
	}

	resp := dto.ToVendorLedgerResponse(dto.LedgerParams{Vendor: "Acme"}, ledger)

	assert.True(t, resp.Summary.NetBalanceAvailable)
	require.NotNil(t, resp.Summary.NetBalance)
	assert.Equal(t, "1500.505", resp.Summary.NetBalance.String())
	assert.Equal(t, "₦1,500.51", resp.Summary.Formatted["netBalance"])
	assert.Equal(t, "₦300.00", resp.Summary.Formatted["totalDebit"])
	assert.Empty(t, resp.GoodsIn)
	assert.NotNil(t, resp.Payments)
}

func TestToVendorLedgerResponse_WithoutBalance(t *testing.T) {
	resp := dto.ToVendorLedgerResponse(dto.LedgerParams{Category: "Laptops"}, domain.VendorLedger{})

	assert.False(t, resp.Summary.NetBalanceAvailable)
	assert.Nil(t, resp.Summary.NetBalance)
	_, ok := resp.Summary.Formatted["netBalance"]
	assert.False(t, ok)
}

func TestUpdateVendorPaymentRequest_Apply(t *testing.T) {
	march := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	payment := domain.VendorPayment{PaymentID: 4, VendorName: "Acme", Amount: decimal.NewFromInt(100), Type: domain.PaymentSent, Date: march}

	corrected := "2025-02-28"
	require.NoError(t, dto.UpdateVendorPaymentRequest{Date: &corrected}.Apply(&payment))
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), payment.Date)

	blank := " "
	require.NoError(t, dto.UpdateVendorPaymentRequest{Date: &blank}.Apply(&payment))
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), payment.Date)

	bad := "28/02/2025"
	err := dto.UpdateVendorPaymentRequest{Date: &bad}.Apply(&payment)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
