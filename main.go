package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"entry-tracker/config"
	"entry-tracker/database"
	entriesapi "entry-tracker/internal/api/entries"
	routes "entry-tracker/internal/app/http"
	"entry-tracker/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	entryStore := store.NewGormEntryStore(database.DB)
	entryHandler := entriesapi.NewHandler(entryStore, logger)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, entryHandler)

	fmt.Printf("🚀 Server running on http://localhost:%s\n", config.PORT)
	r.Run(":" + config.PORT)
}
