package main

import (
	"log"

	"sensor-api/internal/cache"
	"sensor-api/internal/config"
	"sensor-api/internal/database"
	"sensor-api/internal/routes"
	"sensor-api/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars take precedence in deployments
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
	cfg := config.Load()

	// Init database
	database.InitDB(cfg.DatabasePath)

	// Shared in-memory cache borrowed by the sensor service
	sensorCache := cache.NewMemoryCache[string, any]()
	svc := service.NewSensorService(database.GetDB(), sensorCache)

	// Setup the routes (health plus the gated v1/v2 surfaces)
	ginRoutes := routes.SetupRoutes(cfg, svc)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  GET    /api/sensors")
	log.Println("  GET    /api/sensors/:id")
	log.Println("  POST   /api/sensors")
	log.Println("  PUT    /api/sensors/:id")
	log.Println("  DELETE /api/sensors/:id")
	log.Println("  DELETE /api/v2/sensors/:id (archive)")
	log.Println("  PUT    /api/v2/sensors/:id/restore")
	log.Println("  GET    /api/events (websocket)")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
