package services

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
)

// VendorPaymentSvc manages money sent to and received from vendors
type VendorPaymentSvc interface {
	ListPayments(ctx context.Context) ([]domain.VendorPayment, error)
	CreatePayment(ctx context.Context, req dto.CreateVendorPaymentRequest, creatorUserID string) (*domain.VendorPayment, error)
	UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdateVendorPaymentRequest, requestingUserID string) (*domain.VendorPayment, error)
	DeletePayment(ctx context.Context, paymentID int64) error
}

// VendorLedgerSvc aggregates the vendor ledger
type VendorLedgerSvc interface {
	GetLedger(ctx context.Context, filter domain.LedgerFilter) (*domain.VendorLedger, error)
	GetLedgerOptions(ctx context.Context) (*domain.LedgerOptions, error)
}

// VendorSvcFacade combines all vendor service interfaces
type VendorSvcFacade interface {
	VendorPaymentSvc
	VendorLedgerSvc
}
