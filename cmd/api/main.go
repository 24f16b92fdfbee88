package main

import (
	"fmt"
	"log"
	"os"

	"microgrid-economics/internal/api/handlers"
	"microgrid-economics/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	costsHandler := handlers.NewCostsHandler()
	presetsHandler := handlers.NewPresetsHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/costs", costsHandler.Evaluate)
		api.POST("/costs/sweep", costsHandler.Sweep)

		api.GET("/presets", presetsHandler.ListPresets)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
