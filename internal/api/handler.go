package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"training-schedule-backend/internal/schedule"
	"training-schedule-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store     store.Store
	scheduler *schedule.Scheduler
	registry  *schedule.Registry
	query     *schedule.Query
}

// NewHandler creates a new API handler over the given store.
func NewHandler(s store.Store) *Handler {
	return &Handler{
		store:     s,
		scheduler: schedule.NewScheduler(s),
		registry:  schedule.NewRegistry(s),
		query:     schedule.NewQuery(s),
	}
}

// abortTaxonomy writes a scheduling error as a 400 response carrying the
// machine-checkable kind in "code". Errors outside the taxonomy are storage
// faults and become a 500.
func abortTaxonomy(c *gin.Context, err error) {
	if kind, ok := schedule.KindOf(err); ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": string(kind)})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
