package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"training-schedule-backend/internal/model"
	"training-schedule-backend/internal/schedule"
)

type createAvailabilityRequest struct {
	SubjectKind string    `json:"subjectKind" binding:"required"`
	SubjectID   int64     `json:"subjectId" binding:"required"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	IsAvailable *bool     `json:"isAvailable" binding:"required"`
}

// PostAvailability handles POST /api/availability.
func (h *Handler) PostAvailability(c *gin.Context) {
	var req createAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": string(schedule.KindValidation)})
		return
	}

	window, err := h.registry.CreateWindow(c.Request.Context(), schedule.CreateWindowRequest{
		SubjectKind: model.SubjectKind(req.SubjectKind),
		SubjectID:   req.SubjectID,
		Start:       req.Start,
		End:         req.End,
		IsAvailable: *req.IsAvailable,
	})
	if err != nil {
		abortTaxonomy(c, err)
		return
	}

	c.JSON(http.StatusOK, window)
}

// GetAvailabilityByTrainer handles GET /api/availability/by-trainer/{id}.
func (h *Handler) GetAvailabilityByTrainer(c *gin.Context) {
	h.listAvailability(c, h.registry.ListByTrainer)
}

// GetAvailabilityByRoom handles GET /api/availability/by-room/{id}.
func (h *Handler) GetAvailabilityByRoom(c *gin.Context) {
	h.listAvailability(c, h.registry.ListByRoom)
}

func (h *Handler) listAvailability(c *gin.Context, list func(ctx context.Context, id int64) ([]model.Availability, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "code": string(schedule.KindValidation)})
		return
	}

	windows, err := list(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, windows)
}

// DeleteAvailability handles DELETE /api/availability/{id}.
func (h *Handler) DeleteAvailability(c *gin.Context) {
	err := h.registry.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if kind, ok := schedule.KindOf(err); ok && kind == schedule.KindNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": string(kind)})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
