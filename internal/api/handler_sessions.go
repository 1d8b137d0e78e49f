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

type createSessionRequest struct {
	AssignmentID int64     `json:"assignmentId" binding:"required"`
	RoomID       int64     `json:"roomId" binding:"required"`
	Start        time.Time `json:"start" binding:"required"`
	End          time.Time `json:"end" binding:"required"`
}

// PostSession handles POST /api/sessions.
func (h *Handler) PostSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": string(schedule.KindValidation)})
		return
	}

	detail, err := h.scheduler.Schedule(c.Request.Context(), schedule.ScheduleRequest{
		AssignmentID: req.AssignmentID,
		RoomID:       req.RoomID,
		Start:        req.Start,
		End:          req.End,
	})
	if err != nil {
		abortTaxonomy(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// DeleteSession handles DELETE /api/sessions/{id}.
func (h *Handler) DeleteSession(c *gin.Context) {
	err := h.scheduler.Delete(c.Request.Context(), c.Param("id"))
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

// GetSessionsByClass handles GET /api/sessions/by-class/{class_id}.
func (h *Handler) GetSessionsByClass(c *gin.Context) {
	h.rangeQuery(c, "class_id", h.query.ByClass)
}

// GetSessionsByTrainer handles GET /api/sessions/by-trainer/{trainer_id}.
func (h *Handler) GetSessionsByTrainer(c *gin.Context) {
	h.rangeQuery(c, "trainer_id", h.query.ByTrainer)
}

// GetSessionsByRoom handles GET /api/sessions/by-room/{room_id}.
func (h *Handler) GetSessionsByRoom(c *gin.Context) {
	h.rangeQuery(c, "room_id", h.query.ByRoom)
}

// rangeQuery parses the shared path id and start/end bounds, then runs one
// of the query service methods. Both bounds are required RFC3339 instants.
func (h *Handler) rangeQuery(c *gin.Context, param string, find func(ctx context.Context, id int64, from, to time.Time) ([]model.SessionDetail, error)) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id", "code": string(schedule.KindValidation)})
		return
	}

	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	details, err := find(c.Request.Context(), id, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, details)
}

// parseRange reads the start/end query bounds. On failure it writes the 400
// response itself and reports ok=false.
func parseRange(c *gin.Context) (from, to time.Time, ok bool) {
	from, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'start' timestamp format, use RFC3339", "code": string(schedule.KindValidation)})
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'end' timestamp format, use RFC3339", "code": string(schedule.KindValidation)})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
