package dto

import (
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateProductRequest adds a product to the inventory. Name and price are required.
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	Brand        string          `json:"brand" binding:"max=100"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" binding:"decimal_gt0"`
	CostPrice    decimal.Decimal `json:"costPrice" swaggertype:"string" binding:"decimal_gte0"`
	Stock        int             `json:"stock" binding:"gte=0"`
	SupplierName string          `json:"supplierName"`
	ImageURLs    []string        `json:"imageURLs" binding:"omitempty,dive,url"`
	Description  []string        `json:"description"`
	Display      string          `json:"display"`
	RAM          string          `json:"ram"`
	Storage      string          `json:"storage"`
	Processor    string          `json:"processor"`
	Category     string          `json:"category"`
}

// UpdateProductRequest patches a product. Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Brand        *string          `json:"brand" binding:"omitempty,max=100"`
	Price        *decimal.Decimal `json:"price" swaggertype:"string" binding:"omitempty,decimal_gt0"`
	CostPrice    *decimal.Decimal `json:"costPrice" swaggertype:"string" binding:"omitempty,decimal_gte0"`
	Stock        *int             `json:"stock" binding:"omitempty,gte=0"`
	SupplierName *string          `json:"supplierName"`
	ImageURLs    []string         `json:"imageURLs" binding:"omitempty,dive,url"`
	Description  []string         `json:"description"`
	Display      *string          `json:"display"`
	RAM          *string          `json:"ram"`
	Storage      *string          `json:"storage"`
	Processor    *string          `json:"processor"`
	Category     *string          `json:"category"`
}

// ListProductsParams filters the inventory list.
type ListProductsParams struct {
	Brand string `form:"brand"`
}

// StockDecrementItem removes Quantity units of a product.
type StockDecrementItem struct {
	ProductID int64 `json:"productID" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// StockDecrementRequest decrements several products at once, all or nothing.
type StockDecrementRequest struct {
	Items []StockDecrementItem `json:"items" binding:"required,min=1,dive"`
}

// ProductResponse is the API view of a product.
type ProductResponse struct {
	ProductID      int64           `json:"productID"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Price          decimal.Decimal `json:"price" swaggertype:"string"`
	FormattedPrice string          `json:"formattedPrice"`
	CostPrice      decimal.Decimal `json:"costPrice" swaggertype:"string"`
	Stock          int             `json:"stock"`
	SupplierName   string          `json:"supplierName"`
	ImageURLs      []string        `json:"imageURLs"`
	Description    []string        `json:"description"`
	Display        string          `json:"display"`
	RAM            string          `json:"ram"`
	Storage        string          `json:"storage"`
	Processor      string          `json:"processor"`
	Category       string          `json:"category"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ListProductsResponse wraps the inventory list.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:      p.ProductID,
		Name:           p.Name,
		Brand:          p.Brand,
		Price:          p.Price,
		FormattedPrice: utils.FormatNaira(p.Price),
		CostPrice:      p.CostPrice,
		Stock:          p.Stock,
		SupplierName:   p.SupplierName,
		ImageURLs:      nonNil(p.ImageURLs),
		Description:    nonNil(p.Description),
		Display:        p.Display,
		RAM:            p.RAM,
		Storage:        p.Storage,
		Processor:      p.Processor,
		Category:       p.Category,
		CreatedAt:      p.CreatedAt,
		LastUpdatedAt:  p.LastUpdatedAt,
	}
}

func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	resp := ListProductsResponse{Products: make([]ProductResponse, len(products))}
	for i := range products {
		resp.Products[i] = ToProductResponse(&products[i])
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
