package handlers

import (
	"net/http"

	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"github.com/gin-gonic/gin"
)

type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
	merchantService portssvc.MerchantSvcFacade
}

func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade, merchantService portssvc.MerchantSvcFacade) {
	h := &customerHandler{customerService: customerService, merchantService: merchantService}

	rg.GET("/customers", h.listCustomers)
	rg.POST("/customers", h.createCustomer)
	rg.GET("/merchants", h.listMerchants)
	rg.POST("/merchants", h.createMerchant)
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce  json
// @Success 200 {array} dto.CustomerResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// createCustomer godoc
// @Summary Add a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// listMerchants godoc
// @Summary List merchants
// @Tags merchants
// @Produce  json
// @Success 200 {array} dto.MerchantResponse
// @Security BearerAuth
// @Router /merchants [get]
func (h *customerHandler) listMerchants(c *gin.Context) {
	merchants, err := h.merchantService.ListMerchants(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list merchants")
		return
	}
	c.JSON(http.StatusOK, dto.ToMerchantResponses(merchants))
}

// createMerchant godoc
// @Summary Add a merchant
// @Tags merchants
// @Accept  json
// @Produce  json
// @Param   merchant body dto.CreateMerchantRequest true "Merchant"
// @Success 201 {object} dto.MerchantResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /merchants [post]
func (h *customerHandler) createMerchant(c *gin.Context) {
	var req dto.CreateMerchantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	merchant, err := h.merchantService.CreateMerchant(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create merchant")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMerchantResponse(merchant))
}
