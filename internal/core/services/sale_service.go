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
	"github.com/ashirovtech/shop_dashboard/internal/utils/pagination"
)

// SaleService runs the point-of-sale checkout and the sales history.
type SaleService struct {
	BaseService
	saleRepo    portsrepo.SaleRepositoryFacade
	productRepo portsrepo.ProductReader
}

func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, productRepo portsrepo.ProductReader) *SaleService {
	return &SaleService{saleRepo: saleRepo, productRepo: productRepo}
}

var _ portssvc.SaleSvcFacade = (*SaleService)(nil)

// Checkout prices the cart against current stock and records the sale.
func (s *SaleService) Checkout(ctx context.Context, req dto.CheckoutRequest, creatorUserID string) (*domain.Sale, error) {
	lines := req.CartLines()
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := s.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cart products")
		return nil, fmt.Errorf("failed to load cart products: %w", err)
	}

	customer := strings.TrimSpace(req.CustomerName)
	sale, err := domain.NewSale(customer, strings.TrimSpace(req.MerchantName), req.Discount, lines, products, creatorUserID, time.Now())
	if err != nil {
		s.LogInfo(ctx, "Checkout rejected", slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.saleRepo.CreateSale(ctx, sale); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientStock) {
			s.LogInfo(ctx, "Checkout lost a stock race", slog.String("reason", err.Error()))
		} else {
			s.LogError(ctx, err, "Failed to record sale")
		}
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	s.LogInfo(ctx, "Sale recorded",
		slog.Int64("sale_id", sale.SaleID),
		slog.String("total", sale.Total.String()),
		slog.Int("items", len(sale.Items)))
	return sale, nil
}

func (s *SaleService) GetSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale", slog.Int64("sale_id", saleID))
		}
		return nil, fmt.Errorf("failed to get sale %d: %w", saleID, err)
	}
	return sale, nil
}

// ListSales returns one page of the filtered history. A further page exists when NextToken is set.
func (s *SaleService) ListSales(ctx context.Context, params dto.ListSalesParams) (*dto.ListSalesResponse, error) {
	limit := pagination.NormalizeLimit(params.Limit)

	var after *domain.SaleCursor
	if params.NextToken != "" {
		date, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		after = &domain.SaleCursor{Date: date, SaleID: id}
	}

	filter := params.Filter()
	// One extra row tells us whether another page exists.
	sales, err := s.saleRepo.ListSales(ctx, filter, limit+1, after)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	resp := &dto.ListSalesResponse{Title: filter.Label()}
	if len(sales) > limit {
		sales = sales[:limit]
		last := sales[len(sales)-1]
		token := pagination.EncodeToken(last.Date, last.SaleID)
		resp.NextToken = &token
	}
	resp.Sales = dto.ToSaleResponses(sales)
	return resp, nil
}

func (s *SaleService) GetSaleOptions(ctx context.Context) (*domain.SaleOptions, error) {
	opts, err := s.saleRepo.ListSaleOptions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sale options")
		return nil, fmt.Errorf("failed to list sale options: %w", err)
	}
	return opts, nil
}
