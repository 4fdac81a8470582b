package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"github.com/ashirovtech/shop_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// vendorHandler serves vendor payments and the vendor ledger.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func newVendorHandler(vs portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{vendorService: vs}
}

func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.GET("/ledger", h.getLedger)
		vendors.GET("/options", h.getLedgerOptions)

		payments := vendors.Group("/payments")
		payments.GET("", h.listPayments)
		payments.POST("", h.createPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// getLedger godoc
// @Summary Vendor ledger
// @Description Goods in, goods out and payments with their totals. The net balance is omitted when a category or month is selected.
// @Tags vendors
// @Produce  json
// @Param   vendor query string false "Vendor name"
// @Param   category query string false "Category"
// @Param   month query string false "Month label, e.g. January 2024"
// @Success 200 {object} dto.VendorLedgerResponse
// @Security BearerAuth
// @Router /vendors/ledger [get]
func (h *vendorHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	ledger, err := h.vendorService.GetLedger(c.Request.Context(), params.Filter())
	if err != nil {
		respondError(c, err, "Failed to load vendor ledger")
		return
	}
	logger.Debug("Vendor ledger served", slog.String("vendor", params.Vendor))
	c.JSON(http.StatusOK, dto.ToVendorLedgerResponse(params, *ledger))
}

// getLedgerOptions godoc
// @Summary Vendor ledger filter values
// @Tags vendors
// @Produce  json
// @Success 200 {object} domain.LedgerOptions
// @Security BearerAuth
// @Router /vendors/options [get]
func (h *vendorHandler) getLedgerOptions(c *gin.Context) {
	opts, err := h.vendorService.GetLedgerOptions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load ledger options")
		return
	}
	c.JSON(http.StatusOK, opts)
}

// listPayments godoc
// @Summary List vendor payments
// @Tags vendors
// @Produce  json
// @Success 200 {array} dto.VendorPaymentResponse
// @Security BearerAuth
// @Router /vendors/payments [get]
func (h *vendorHandler) listPayments(c *gin.Context) {
	payments, err := h.vendorService.ListPayments(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorPaymentResponses(payments))
}

// createPayment godoc
// @Summary Record money sent to or received from a vendor
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreateVendorPaymentRequest true "Payment"
// @Success 201 {object} dto.VendorPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/payments [post]
func (h *vendorHandler) createPayment(c *gin.Context) {
	var req dto.CreateVendorPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payment, err := h.vendorService.CreatePayment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVendorPaymentResponse(payment))
}

// updatePayment godoc
// @Summary Update a vendor payment
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   id path int true "Payment ID"
// @Param   payment body dto.UpdateVendorPaymentRequest true "Fields to change"
// @Success 200 {object} dto.VendorPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/payments/{id} [put]
func (h *vendorHandler) updatePayment(c *gin.Context) {
	paymentID, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateVendorPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payment, err := h.vendorService.UpdatePayment(c.Request.Context(), paymentID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToVendorPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a vendor payment
// @Tags vendors
// @Param   id path int true "Payment ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vendors/payments/{id} [delete]
func (h *vendorHandler) deletePayment(c *gin.Context) {
	paymentID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.vendorService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		respondError(c, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
