package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"training-schedule-backend/internal/mw"
	"training-schedule-backend/internal/store"
)

// RouterOptions tunes the middleware applied to the API group.
type RouterOptions struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	CatalogCacheTTL time.Duration
}

func (o RouterOptions) withDefaults() RouterOptions {
	if o.RateLimitPerSec <= 0 {
		o.RateLimitPerSec = 10
	}
	if o.RateLimitBurst <= 0 {
		o.RateLimitBurst = 5
	}
	if o.CatalogCacheTTL <= 0 {
		o.CatalogCacheTTL = 5 * time.Minute
	}
	return o
}

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, opts RouterOptions) *gin.Engine {
	r := gin.Default()

	opts = opts.withDefaults()
	db := s.DB()
	handler := NewHandler(s)

	rateLimiter := mw.RateLimiter(rate.Limit(opts.RateLimitPerSec), opts.RateLimitBurst)

	// Catalog responses change rarely; cache them. Session and availability
	// reads must reflect writes immediately and stay uncached.
	cacheStore := cache.New(opts.CatalogCacheTTL, 2*opts.CatalogCacheTTL)
	caching := mw.Cache(cacheStore, opts.CatalogCacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Scheduling core.
		api.POST("/sessions", handler.PostSession)
		api.GET("/sessions/by-class/:class_id", handler.GetSessionsByClass)
		api.GET("/sessions/by-trainer/:trainer_id", handler.GetSessionsByTrainer)
		api.GET("/sessions/by-room/:room_id", handler.GetSessionsByRoom)
		api.DELETE("/sessions/:id", handler.DeleteSession)

		// Availability registry.
		api.POST("/availability", handler.PostAvailability)
		api.GET("/availability/by-trainer/:id", handler.GetAvailabilityByTrainer)
		api.GET("/availability/by-room/:id", handler.GetAvailabilityByRoom)
		api.DELETE("/availability/:id", handler.DeleteAvailability)

		// Catalog read models.
		api.GET("/classes", caching, GetClasses(db))
		api.GET("/trainers", caching, GetTrainers(db))
		api.GET("/rooms", caching, GetRooms(db))
	}

	return r
}
