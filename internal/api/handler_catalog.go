package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"training-schedule-backend/internal/model"
)

// Catalog endpoints are read-only views over records the wider back-office
// owns. They exist so front-office clients can populate pickers; all writes
// happen outside this service.

// GetClasses handles the GET /api/classes request.
func GetClasses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var classes []model.Class
		if err := db.Order("start_date ASC").Find(&classes).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve classes"})
			return
		}
		c.JSON(http.StatusOK, classes)
	}
}

// GetTrainers handles the GET /api/trainers request.
func GetTrainers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var trainers []model.Trainer
		if err := db.Order("name ASC").Find(&trainers).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve trainers"})
			return
		}
		c.JSON(http.StatusOK, trainers)
	}
}

// GetRooms handles the GET /api/rooms request.
func GetRooms(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rooms []model.Room
		if err := db.Order("name ASC").Find(&rooms).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rooms"})
			return
		}
		c.JSON(http.StatusOK, rooms)
	}
}
