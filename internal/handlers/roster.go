package handlers

import (
	"net/http"
	"strconv"

	"github.com/agritrack/agritrack-server/internal/services"
	"github.com/gin-gonic/gin"
)

type RosterHandler struct {
	rosterService *services.RosterService
}

func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

type UpdateWorkersRequest struct {
	// Workers is free-form roster text, one worker name per line.
	Workers string `json:"workers"`
}

// @Summary Update the worker roster
// @Description Replace a harvest's worker roster; an edit that removes exactly one name and adds exactly one is treated as a rename and historical records are carried to the new name
// @Tags harvests
// @Accept json
// @Produce json
// @Param id path int true "Harvest ID"
// @Param request body UpdateWorkersRequest true "Roster text, one name per line"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /harvests/{id}/workers [put]
func (h *RosterHandler) UpdateWorkers(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid harvest id"})
		return
	}

	var req UpdateWorkersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	if err := h.rosterService.UpdateWorkers(uint(id), req.Workers); err != nil {
		c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "roster updated"})
}
