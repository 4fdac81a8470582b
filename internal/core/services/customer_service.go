package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
)

// CustomerService manages point-of-sale customers.
type CustomerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*CustomerService)(nil)

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}
	customer := domain.Customer{
		Name:        name,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.customerRepo.SaveCustomer(ctx, &customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("name", name))
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	s.LogInfo(ctx, "Customer created", slog.Int64("customer_id", customer.CustomerID))
	return &customer, nil
}

// MerchantService manages sellers.
type MerchantService struct {
	BaseService
	merchantRepo portsrepo.MerchantRepositoryFacade
}

func NewMerchantService(merchantRepo portsrepo.MerchantRepositoryFacade) *MerchantService {
	return &MerchantService{merchantRepo: merchantRepo}
}

var _ portssvc.MerchantSvcFacade = (*MerchantService)(nil)

func (s *MerchantService) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	merchants, err := s.merchantRepo.ListMerchants(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list merchants")
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}
	if merchants == nil {
		return []domain.Merchant{}, nil
	}
	return merchants, nil
}

func (s *MerchantService) CreateMerchant(ctx context.Context, req dto.CreateMerchantRequest, creatorUserID string) (*domain.Merchant, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: merchant name is required", apperrors.ErrValidation)
	}
	merchant := domain.Merchant{
		Name:        name,
		AuditFields: domain.NewAuditFields(creatorUserID, time.Now()),
	}
	if err := s.merchantRepo.SaveMerchant(ctx, &merchant); err != nil {
		s.LogError(ctx, err, "Failed to save merchant", slog.String("name", name))
		return nil, fmt.Errorf("failed to create merchant: %w", err)
	}
	return &merchant, nil
}
