package routes

import (
	entriesapi "entry-tracker/internal/api/entries"
	"entry-tracker/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, entries *entriesapi.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.SanitizeInputMiddleware())

	api.GET("/entries/stats", entries.GetEntryStats)
	api.POST("/entries", entries.CreateEntry)
	api.GET("/entries", entries.GetAllEntries)
	api.PUT("/entries/:id", entries.UpdateEntry)
	api.DELETE("/entries/:id", entries.DeleteEntry)
}
