package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"github.com/ashirovtech/shop_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler serves the point of sale and its history.
type saleHandler struct {
	saleService portssvc.SaleSvcFacade
}

func newSaleHandler(ss portssvc.SaleSvcFacade) *saleHandler {
	return &saleHandler{saleService: ss}
}

func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.GET("", h.listSales)
		sales.POST("", h.checkout)
		sales.GET("/options", h.getSaleOptions)
		sales.GET("/:id", h.getSale)
		sales.GET("/:id/receipt", h.getReceipt)
	}
}

// checkout godoc
// @Summary Check out a cart
// @Description Prices the cart, records the sale and decrements stock in one transaction.
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   cart body dto.CheckoutRequest true "Cart"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown product"
// @Failure 409 {object} ErrorResponse "Insufficient stock"
// @Security BearerAuth
// @Router /sales [post]
func (h *saleHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sale, err := h.saleService.Checkout(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to complete checkout")
		return
	}
	logger.Info("Sale recorded", slog.Int64("sale_id", sale.SaleID), slog.String("total", sale.Total.String()))
	c.JSON(http.StatusCreated, dto.ToCheckoutResponse(sale))
}

// listSales godoc
// @Summary Sales history
// @Description Newest first. Pass nextToken from the previous page to continue.
// @Tags sales
// @Produce  json
// @Param   month query int false "Month 1-12"
// @Param   year query int false "Year"
// @Param   customer query string false "Customer name contains"
// @Param   product query string false "Product name contains"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListSalesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *saleHandler) listSales(c *gin.Context) {
	var params dto.ListSalesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list sales")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSaleOptions godoc
// @Summary Sales history filter values
// @Tags sales
// @Produce  json
// @Success 200 {object} domain.SaleOptions
// @Security BearerAuth
// @Router /sales/options [get]
func (h *saleHandler) getSaleOptions(c *gin.Context) {
	opts, err := h.saleService.GetSaleOptions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load sale options")
		return
	}
	c.JSON(http.StatusOK, opts)
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce  json
// @Param   id path int true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *saleHandler) getSale(c *gin.Context) {
	saleID, ok := idParam(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// getReceipt godoc
// @Summary Printable receipt of a sale
// @Tags sales
// @Produce  json
// @Param   id path int true "Sale ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id}/receipt [get]
func (h *saleHandler) getReceipt(c *gin.Context) {
	saleID, ok := idParam(c)
	if !ok {
		return
	}

	sale, err := h.saleService.GetSaleByID(c.Request.Context(), saleID)
	if err != nil {
		respondError(c, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.NewReceipt(sale))
}
