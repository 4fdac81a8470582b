package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
)

func catalog() map[int64]domain.Product {
	return map[int64]domain.Product{
		1: {ProductID: 1, Name: "HP EliteBook 840", Price: decimal.NewFromInt(250000), Stock: 4},
		2: {ProductID: 2, Name: "Logitech Mouse", Price: decimal.NewFromInt(7500), Stock: 10},
	}
}

func TestNewSale(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	lines := []domain.CartLine{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 3}}

	sale, err := domain.NewSale("Ada (0803)", "Tunde", decimal.NewFromInt(2500), lines, catalog(), "user-1", now)
	require.NoError(t, err)

	assert.Equal(t, "522500", sale.Subtotal.String())
	assert.Equal(t, "520000", sale.Total.String())
	assert.Equal(t, now, sale.Date)
	assert.Equal(t, "user-1", sale.CreatedBy)
	require.Len(t, sale.Items, 2)
	assert.Equal(t, "HP EliteBook 840", sale.Items[0].ProductName)
	assert.Equal(t, "500000", sale.Items[0].Total.String())
	assert.Equal(t, []domain.StockAdjustment{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 3}}, sale.StockAdjustments())
}

func TestNewSale_Rejects(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		customer string
		merchant string
		discount int64
		lines    []domain.CartLine
		wantErr  error
	}{
		{name: "empty cart", customer: "Ada", merchant: "Tunde", wantErr: apperrors.ErrValidation},
		{name: "missing seller", customer: "Ada", lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}, wantErr: apperrors.ErrValidation},
		{name: "missing customer", merchant: "Tunde", lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}, wantErr: apperrors.ErrValidation},
		{name: "negative discount", customer: "Ada", merchant: "Tunde", discount: -1, lines: []domain.CartLine{{ProductID: 1, Quantity: 1}}, wantErr: apperrors.ErrValidation},
		{name: "duplicate product", customer: "Ada", merchant: "Tunde", lines: []domain.CartLine{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: 1}}, wantErr: apperrors.ErrValidation},
		{name: "unknown product", customer: "Ada", merchant: "Tunde", lines: []domain.CartLine{{ProductID: 9, Quantity: 1}}, wantErr: apperrors.ErrNotFound},
		{name: "zero quantity", customer: "Ada", merchant: "Tunde", lines: []domain.CartLine{{ProductID: 1, Quantity: 0}}, wantErr: apperrors.ErrValidation},
		{name: "more than in stock", customer: "Ada", merchant: "Tunde", lines: []domain.CartLine{{ProductID: 1, Quantity: 5}}, wantErr: apperrors.ErrInsufficientStock},
		{name: "discount above subtotal", customer: "Ada", merchant: "Tunde", discount: 8000, lines: []domain.CartLine{{ProductID: 2, Quantity: 1}}, wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale, err := domain.NewSale(tt.customer, tt.merchant, decimal.NewFromInt(tt.discount), tt.lines, catalog(), "user-1", now)
			assert.Nil(t, sale)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInsufficientStockIsValidation(t *testing.T) {
	assert.ErrorIs(t, apperrors.ErrInsufficientStock, apperrors.ErrValidation)
}

func TestSaleFilter_Label(t *testing.T) {
	assert.Equal(t, "All Sales Records", domain.SaleFilter{}.Label())
	assert.Equal(t, "All Sales Records", domain.SaleFilter{Customer: "ada"}.Label())
	assert.Equal(t, "March 2025", domain.SaleFilter{Month: 3, Year: 2025}.Label())
	assert.Equal(t, "2024", domain.SaleFilter{Year: 2024}.Label())
}

func TestCustomer_Label(t *testing.T) {
	assert.Equal(t, "Ada (0803)", domain.Customer{Name: "Ada", PhoneNumber: "0803"}.Label())
	assert.Equal(t, "Ada", domain.Customer{Name: "Ada"}.Label())
}
