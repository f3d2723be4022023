package main

import (
	"context"
	"log"

	"github.com/dasomcenter/dasom-api/internal/api/middleware"
	"github.com/dasomcenter/dasom-api/internal/api/routes"
	"github.com/dasomcenter/dasom-api/internal/config"
	"github.com/dasomcenter/dasom-api/internal/config/db"
	"github.com/dasomcenter/dasom-api/pkg/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and run migrations
	db.Init()

	store, err := storage.New(context.Background())
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, store)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
