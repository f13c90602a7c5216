package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/agritrack/agritrack-server/internal/services"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// @Summary Get a harvest report
// @Description Get the grouped weight report for a harvest on one date (today when no date is given)
// @Tags reports
// @Produce json
// @Param id path int true "Harvest ID"
// @Param date query string false "Report date, YYYY-MM-DD"
// @Success 200 {object} services.Report
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /harvests/{id}/report [get]
func (h *ReportHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid harvest id"})
		return
	}

	report, err := h.reportService.Snapshot(uint(id), c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Select the report date
// @Description Switch the shared report session for a harvest to another date; dates without records are allowed
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Harvest ID"
// @Param request body SelectDateRequest true "Date selection request"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /harvests/{id}/report/date [put]
func (h *ReportHandler) SelectDate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid harvest id"})
		return
	}

	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	h.reportService.Session(uint(id)).SelectDate(req.Date)
	c.JSON(http.StatusOK, MessageResponse{Message: "date selected"})
}

// @Summary Stream harvest reports
// @Description Server-sent event stream of the harvest's report; the current report is sent immediately, then again on every change
// @Tags reports
// @Produce text/event-stream
// @Param id path int true "Harvest ID"
// @Success 200 {object} services.Report
// @Failure 400 {object} ErrorResponse
// @Router /harvests/{id}/report/stream [get]
func (h *ReportHandler) Stream(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid harvest id"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ch, cancel := h.reportService.Session(uint(id)).Subscribe(c.Request.Context())
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case report := <-ch:
			c.SSEvent("report", report)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
