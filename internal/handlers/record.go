package handlers

import (
	"net/http"
	"strconv"

	"github.com/agritrack/agritrack-server/internal/services"
	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	reportService *services.ReportService
}

func NewRecordHandler(reportService *services.ReportService) *RecordHandler {
	return &RecordHandler{reportService: reportService}
}

type AddRecordRequest struct {
	WorkerName string `json:"worker_name" binding:"required"`
	Weight     string `json:"weight" binding:"required"`
}

// @Summary Add a weight record
// @Description Record a weighed delivery for a worker; the record always lands on today's date
// @Tags records
// @Accept json
// @Produce json
// @Param id path int true "Harvest ID"
// @Param request body AddRecordRequest true "Weight record request"
// @Success 201 {object} models.WeightRecord
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /harvests/{id}/records [post]
func (h *RecordHandler) Add(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid harvest id"})
		return
	}

	var req AddRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	record, err := h.reportService.Session(uint(id)).AddRecord(req.WorkerName, req.Weight)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// @Summary Delete a weight record
// @Description Delete one weight record by id; a missing id is a no-op
// @Tags records
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid record id"})
		return
	}

	if err := h.reportService.DeleteRecord(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "record deleted"})
}
