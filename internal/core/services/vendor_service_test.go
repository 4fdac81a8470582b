package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/core/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type VendorServiceTestSuite struct {
	suite.Suite
	mockRepo *MockVendorRepository
	service  *services.VendorService
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockVendorRepository)
	suite.service = services.NewVendorService(suite.mockRepo)
}

func vendorRows() ([]domain.VendorTransaction, []domain.VendorPayment) {
	march := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	transactions := []domain.VendorTransaction{
		{RecordID: 1, VendorName: "Acme Ltd", Category: "Laptops", Quantity: 2, ServiceCharge: decimal.NewFromInt(100), Description: "GOODS IN from Acme", DateIn: &march},
		{RecordID: 2, VendorName: " acme ltd", Category: "Laptops", Quantity: 1, ServiceCharge: decimal.NewFromInt(50), Description: "goods out", DateIn: &march},
		{RecordID: 3, VendorName: "Beta", Category: "Phones", Quantity: 5, ServiceCharge: decimal.NewFromInt(10), Description: "GOODS IN", DateIn: &march},
	}
	payments := []domain.VendorPayment{
		{PaymentID: 1, VendorName: "ACME LTD", Amount: decimal.NewFromInt(300), Type: domain.PaymentSent, Date: march},
		{PaymentID: 2, VendorName: "Beta", Amount: decimal.NewFromInt(40), Type: domain.PaymentReceived, Date: march},
	}
	return transactions, payments
}

func (suite *VendorServiceTestSuite) TestGetLedger_Vendor() {
	ctx := context.Background()
	transactions, payments := vendorRows()
	suite.mockRepo.On("ListVendorTransactions", ctx).Return(transactions, nil).Once()
	suite.mockRepo.On("ListPayments", ctx).Return(payments, nil).Once()

	ledger, err := suite.service.GetLedger(ctx, domain.LedgerFilter{VendorName: "Acme Ltd"})

	suite.Require().NoError(err)
	s := ledger.Summary
	suite.Equal(int64(2), s.TotalGoodsInQty)
	suite.Equal(int64(1), s.TotalGoodsOutQty)
	suite.True(s.TotalDebit.Equal(decimal.NewFromInt(200)))
	suite.True(s.TotalCredit.Equal(decimal.NewFromInt(50)))
	suite.True(s.TotalSent.Equal(decimal.NewFromInt(300)))
	suite.Require().NotNil(s.NetBalance)
	suite.Len(ledger.Payments, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestGetLedger_MonthFilterHasNoNetBalance() {
	ctx := context.Background()
	transactions, payments := vendorRows()
	suite.mockRepo.On("ListVendorTransactions", ctx).Return(transactions, nil).Once()
	suite.mockRepo.On("ListPayments", ctx).Return(payments, nil).Once()

	ledger, err := suite.service.GetLedger(ctx, domain.LedgerFilter{VendorName: "Acme Ltd", Month: "March 2025"})

	suite.Require().NoError(err)
	suite.Nil(ledger.Summary.NetBalance)
}

func (suite *VendorServiceTestSuite) TestGetLedger_LoadError() {
	ctx := context.Background()
	suite.mockRepo.On("ListVendorTransactions", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.GetLedger(ctx, domain.LedgerFilter{})

	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListPayments", mock.Anything)
}

func (suite *VendorServiceTestSuite) TestGetLedgerOptions() {
	ctx := context.Background()
	transactions, payments := vendorRows()
	suite.mockRepo.On("ListVendorTransactions", ctx).Return(transactions, nil).Once()
	suite.mockRepo.On("ListPayments", ctx).Return(payments, nil).Once()

	opts, err := suite.service.GetLedgerOptions(ctx)

	suite.Require().NoError(err)
	suite.Len(opts.Vendors, 2)
	suite.Equal([]string{"Laptops", "Phones"}, opts.Categories)
	suite.Equal([]string{"March 2025"}, opts.Months)
}

func (suite *VendorServiceTestSuite) TestCreatePayment() {
	ctx := context.Background()
	req := dto.CreateVendorPaymentRequest{
		VendorName: " Acme Ltd ",
		Amount:     decimal.NewFromInt(1500),
		Type:       "received",
		Date:       "2025-03-04",
	}
	suite.mockRepo.On("SavePayment", ctx, mock.AnythingOfType("*domain.VendorPayment")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.VendorPayment).PaymentID = 5
		}).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(5), payment.PaymentID)
	suite.Equal("Acme Ltd", payment.VendorName)
	suite.Equal(domain.PaymentReceived, payment.Type)
	suite.Equal(time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC), payment.Date)
}

func (suite *VendorServiceTestSuite) TestCreatePayment_Rejected() {
	ctx := context.Background()
	cases := map[string]dto.CreateVendorPaymentRequest{
		"blank vendor": {VendorName: " ", Amount: decimal.NewFromInt(10), Type: "sent"},
		"zero amount":  {VendorName: "Acme", Amount: decimal.Zero, Type: "sent"},
		"bad type":     {VendorName: "Acme", Amount: decimal.NewFromInt(10), Type: "refund"},
		"bad date":     {VendorName: "Acme", Amount: decimal.NewFromInt(10), Type: "sent", Date: "04/03/2025"},
	}
	for name, req := range cases {
		suite.Run(name, func() {
			_, err := suite.service.CreatePayment(ctx, req, "user-1")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *VendorServiceTestSuite) TestUpdatePayment() {
	ctx := context.Background()
	stored := &domain.VendorPayment{PaymentID: 5, VendorName: "Acme Ltd", Amount: decimal.NewFromInt(100), Type: domain.PaymentSent}
	amount := decimal.NewFromInt(250)

	suite.mockRepo.On("FindPaymentByID", ctx, int64(5)).Return(stored, nil).Twice()
	suite.mockRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.VendorPayment) bool {
		return p.Amount.Equal(amount) && p.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, 5, dto.UpdateVendorPaymentRequest{Amount: &amount}, "user-2")
	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(amount))

	same := "Acme Ltd"
	_, err = suite.service.UpdatePayment(ctx, 5, dto.UpdateVendorPaymentRequest{VendorName: &same}, "user-2")
	suite.Require().NoError(err)

	suite.mockRepo.AssertNumberOfCalls(suite.T(), "UpdatePayment", 1)
}

func (suite *VendorServiceTestSuite) TestUpdatePayment_CorrectsDate() {
	ctx := context.Background()
	march := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	stored := &domain.VendorPayment{PaymentID: 6, VendorName: "Beta", Amount: decimal.NewFromInt(40), Type: domain.PaymentReceived, Date: march}
	corrected := time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindPaymentByID", ctx, int64(6)).Return(stored, nil).Twice()
	suite.mockRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.VendorPayment) bool {
		return p.Date.Equal(corrected)
	})).Return(nil).Once()

	date := "2025-03-30"
	updated, err := suite.service.UpdatePayment(ctx, 6, dto.UpdateVendorPaymentRequest{Date: &date}, "user-2")
	suite.Require().NoError(err)
	suite.True(updated.Date.Equal(corrected))

	bad := "30-03-2025"
	_, err = suite.service.UpdatePayment(ctx, 6, dto.UpdateVendorPaymentRequest{Date: &bad}, "user-2")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VendorServiceTestSuite) TestDeletePayment() {
	ctx := context.Background()
	suite.mockRepo.On("DeletePayment", ctx, int64(5)).Return(nil).Once()

	suite.NoError(suite.service.DeletePayment(ctx, 5))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestVendorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
