package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/agritrack/agritrack-server/internal/models"
	"github.com/agritrack/agritrack-server/internal/services"
	"github.com/agritrack/agritrack-server/internal/stream"
	"github.com/gin-gonic/gin"
)

type HarvestHandler struct {
	harvestService *services.HarvestService
	reportService  *services.ReportService
	listCell       *stream.Cell[[]models.Harvest]
}

func NewHarvestHandler(harvestService *services.HarvestService, reportService *services.ReportService, listCell *stream.Cell[[]models.Harvest]) *HarvestHandler {
	return &HarvestHandler{
		harvestService: harvestService,
		reportService:  reportService,
		listCell:       listCell,
	}
}

type CreateHarvestRequest struct {
	Name string `json:"name" binding:"required"`
}

// @Summary List harvests
// @Description Get all harvests, newest first
// @Tags harvests
// @Produce json
// @Success 200 {array} models.Harvest
// @Failure 500 {object} ErrorResponse
// @Router /harvests [get]
func (h *HarvestHandler) List(c *gin.Context) {
	harvests, err := h.harvestService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, harvests)
}

// @Summary Create a harvest
// @Description Create a new harvest starting today with an empty worker roster
// @Tags harvests
// @Accept json
// @Produce json
// @Param request body CreateHarvestRequest true "Harvest creation request"
// @Success 201 {object} models.Harvest
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /harvests [post]
func (h *HarvestHandler) Create(c *gin.Context) {
	var req CreateHarvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	harvest, err := h.harvestService.Create(req.Name)
	if err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, harvest)
}

// @Summary Delete a harvest
// @Description Delete a harvest and all of its weight records
// @Tags harvests
// @Produce json
// @Param id path int true "Harvest ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /harvests/{id} [delete]
func (h *HarvestHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid harvest id"})
		return
	}

	if err := h.harvestService.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	h.reportService.CloseSession(uint(id))
	c.JSON(http.StatusOK, MessageResponse{Message: "harvest deleted"})
}

// @Summary Stream the harvest list
// @Description Server-sent event stream of the harvest list; the current list is sent immediately, then again on every change
// @Tags harvests
// @Produce text/event-stream
// @Success 200 {array} models.Harvest
// @Router /harvests/stream [get]
func (h *HarvestHandler) Stream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ch, cancel := h.listCell.Subscribe(c.Request.Context())
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case harvests := <-ch:
			c.SSEvent("harvests", harvests)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
