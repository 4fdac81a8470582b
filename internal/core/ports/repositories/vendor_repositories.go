package repositories

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
)

// VendorTransactionReader reads the general record as vendor goods movements.
type VendorTransactionReader interface {
	// ListVendorTransactions lists every general-record row, oldest first, read as a vendor transaction.
	ListVendorTransactions(ctx context.Context) ([]domain.VendorTransaction, error)
}

// VendorPaymentReader defines read operations for vendor payments
type VendorPaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.VendorPayment, error)

	// ListPayments lists every payment, oldest first.
	ListPayments(ctx context.Context) ([]domain.VendorPayment, error)
}

// VendorPaymentWriter defines write operations for vendor payments
type VendorPaymentWriter interface {
	// SavePayment inserts a payment and sets its ID.
	SavePayment(ctx context.Context, payment *domain.VendorPayment) error
	UpdatePayment(ctx context.Context, payment domain.VendorPayment) error
	DeletePayment(ctx context.Context, paymentID int64) error
}

// VendorRepositoryFacade combines all vendor repository interfaces
type VendorRepositoryFacade interface {
	VendorTransactionReader
	VendorPaymentReader
	VendorPaymentWriter
}
