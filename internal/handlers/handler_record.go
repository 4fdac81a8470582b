package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"github.com/ashirovtech/shop_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recordHandler serves the general record and the reports built on it.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
	reportService portssvc.ReportSvcFacade
}

func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade, reportService portssvc.ReportSvcFacade) {
	h := &recordHandler{recordService: recordService, reportService: reportService}

	records := rg.Group("/records")
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.PUT("/:id", h.updateRecord)
		records.DELETE("/:id", h.deleteRecord)
	}
	rg.GET("/reports/jobs", h.getJobBoard)
}

// listRecords godoc
// @Summary List general record rows
// @Tags records
// @Produce  json
// @Param   month query string false "Month 01-12 of date in"
// @Param   year query string false "Year of date in"
// @Param   customer query string false "Customer name contains"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records))
}

// createRecord godoc
// @Summary Add a general record row
// @Description Profit, staff commission and net profit are derived from the row.
// @Tags records
// @Accept  json
// @Produce  json
// @Param   record body dto.CreateRecordRequest true "Row"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create record")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Record created", slog.Int64("record_id", record.RecordID))
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// updateRecord godoc
// @Summary Update a general record row
// @Description Fields absent from the body keep their value. Derived figures are recomputed.
// @Tags records
// @Accept  json
// @Produce  json
// @Param   id path int true "Record ID"
// @Param   record body dto.UpdateRecordRequest true "Fields to change"
// @Success 200 {object} dto.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id} [put]
func (h *recordHandler) updateRecord(c *gin.Context) {
	recordID, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.recordService.UpdateRecord(c.Request.Context(), recordID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update record")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete a general record row
// @Tags records
// @Param   id path int true "Record ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	recordID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), recordID); err != nil {
		respondError(c, err, "Failed to delete record")
		return
	}
	c.Status(http.StatusNoContent)
}

// getJobBoard godoc
// @Summary Open jobs grouped by remark
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.JobBoardResponse
// @Security BearerAuth
// @Router /reports/jobs [get]
func (h *recordHandler) getJobBoard(c *gin.Context) {
	board, err := h.reportService.GetJobBoard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build job board")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobBoardResponse(*board))
}
