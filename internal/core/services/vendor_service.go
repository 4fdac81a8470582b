package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"github.com/ashirovtech/shop_dashboard/internal/utils/accounting"
)

// VendorService manages vendor payments and aggregates the vendor ledger.
type VendorService struct {
	BaseService
	vendorRepo portsrepo.VendorRepositoryFacade
}

func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

var _ portssvc.VendorSvcFacade = (*VendorService)(nil)

func (s *VendorService) ListPayments(ctx context.Context) ([]domain.VendorPayment, error) {
	payments, err := s.vendorRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendor payments")
		return nil, fmt.Errorf("failed to list vendor payments: %w", err)
	}
	if payments == nil {
		return []domain.VendorPayment{}, nil
	}
	return payments, nil
}

func (s *VendorService) CreatePayment(ctx context.Context, req dto.CreateVendorPaymentRequest, creatorUserID string) (*domain.VendorPayment, error) {
	vendor := strings.TrimSpace(req.VendorName)
	if vendor == "" || !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: select a vendor and enter an amount", apperrors.ErrValidation)
	}
	paymentType := domain.PaymentType(req.Type)
	if paymentType != domain.PaymentSent && paymentType != domain.PaymentReceived {
		return nil, fmt.Errorf("%w: payment type must be sent or received", apperrors.ErrValidation)
	}

	now := time.Now()
	date := now
	d, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if d != nil {
		date = *d
	}

	payment := domain.VendorPayment{
		VendorName:  vendor,
		Amount:      req.Amount,
		Type:        paymentType,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.vendorRepo.SavePayment(ctx, &payment); err != nil {
		s.LogError(ctx, err, "Failed to save vendor payment", slog.String("vendor", vendor))
		return nil, fmt.Errorf("failed to create vendor payment: %w", err)
	}

	s.LogInfo(ctx, "Vendor payment recorded",
		slog.Int64("payment_id", payment.PaymentID),
		slog.String("type", string(payment.Type)))
	return &payment, nil
}

func (s *VendorService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdateVendorPaymentRequest, requestingUserID string) (*domain.VendorPayment, error) {
	original, err := s.vendorRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find vendor payment", slog.Int64("payment_id", paymentID))
		}
		return nil, fmt.Errorf("failed to get vendor payment %d: %w", paymentID, err)
	}

	edit := domain.BeginEdit(*original)
	if err := req.Apply(&edit.Draft); err != nil {
		return nil, err
	}
	if edit.Draft.VendorName == "" {
		return nil, fmt.Errorf("%w: vendor name cannot be empty", apperrors.ErrValidation)
	}
	if !edit.Dirty() {
		return &edit.Original, nil
	}

	edit.Draft.Touch(requestingUserID, time.Now())
	if err := s.vendorRepo.UpdatePayment(ctx, edit.Draft); err != nil {
		s.LogError(ctx, err, "Failed to update vendor payment", slog.Int64("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update vendor payment %d: %w", paymentID, err)
	}
	return &edit.Draft, nil
}

func (s *VendorService) DeletePayment(ctx context.Context, paymentID int64) error {
	if err := s.vendorRepo.DeletePayment(ctx, paymentID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete vendor payment", slog.Int64("payment_id", paymentID))
		}
		return fmt.Errorf("failed to delete vendor payment %d: %w", paymentID, err)
	}
	s.LogInfo(ctx, "Vendor payment deleted", slog.Int64("payment_id", paymentID))
	return nil
}

// GetLedger loads every goods movement and payment and aggregates them for filter.
func (s *VendorService) GetLedger(ctx context.Context, filter domain.LedgerFilter) (*domain.VendorLedger, error) {
	transactions, payments, err := s.loadLedgerRows(ctx)
	if err != nil {
		return nil, err
	}
	ledger := accounting.AggregateVendorLedger(transactions, payments, filter)
	s.LogDebug(ctx, "Vendor ledger aggregated",
		slog.String("vendor", filter.VendorName),
		slog.String("category", filter.Category),
		slog.String("month", filter.Month),
		slog.Bool("net_balance", ledger.Summary.NetBalance != nil))
	return &ledger, nil
}

func (s *VendorService) GetLedgerOptions(ctx context.Context) (*domain.LedgerOptions, error) {
	transactions, payments, err := s.loadLedgerRows(ctx)
	if err != nil {
		return nil, err
	}
	opts := accounting.CollectLedgerOptions(transactions, payments)
	return &opts, nil
}

func (s *VendorService) loadLedgerRows(ctx context.Context) ([]domain.VendorTransaction, []domain.VendorPayment, error) {
	transactions, err := s.vendorRepo.ListVendorTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load vendor transactions")
		return nil, nil, fmt.Errorf("failed to load vendor transactions: %w", err)
	}
	payments, err := s.vendorRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load vendor payments")
		return nil, nil, fmt.Errorf("failed to load vendor payments: %w", err)
	}
	return transactions, payments, nil
}
