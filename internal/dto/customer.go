package dto

import "github.com/ashirovtech/shop_dashboard/internal/core/domain"

// CreateCustomerRequest registers a customer for the point of sale.
type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=20"`
}

type CustomerResponse struct {
	CustomerID  int64  `json:"customerID"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Label       string `json:"label"`
}

// CreateMerchantRequest registers a seller.
type CreateMerchantRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type MerchantResponse struct {
	MerchantID int64  `json:"merchantID"`
	Name       string `json:"name"`
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.CustomerID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		Label:       c.Label(),
	}
}

func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}

func ToMerchantResponse(m *domain.Merchant) MerchantResponse {
	return MerchantResponse{MerchantID: m.MerchantID, Name: m.Name}
}

func ToMerchantResponses(merchants []domain.Merchant) []MerchantResponse {
	out := make([]MerchantResponse, len(merchants))
	for i := range merchants {
		out[i] = ToMerchantResponse(&merchants[i])
	}
	return out
}
