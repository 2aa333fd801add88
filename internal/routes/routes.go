package routes

import (
	"sensor-api/internal/config"
	"sensor-api/internal/handlers"
	"sensor-api/internal/middleware"
	"sensor-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the two API surfaces onto a gin engine. Every /api route
// passes the API-key gate and then the per-IP rate gate before reaching a
// handler; /health stays open for probes.
func SetupRoutes(cfg *config.Config, svc *service.SensorService) *gin.Engine {
	ginRouter := gin.Default()

	sensorHandler := handlers.NewSensorHandler(svc)
	rateLimiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Sensor API is running",
		})
	})

	api := ginRouter.Group("/api")
	api.Use(middleware.APIKeyAuth(cfg.APIKey))
	api.Use(middleware.RateLimit(rateLimiter))
	{
		// v1: plain CRUD with hard delete
		api.GET("/sensors", sensorHandler.GetSensors)
		api.GET("/sensors/:id", sensorHandler.GetSensorByID)
		api.POST("/sensors", sensorHandler.CreateSensor)
		api.PUT("/sensors/:id", sensorHandler.UpdateSensor)
		api.DELETE("/sensors/:id", sensorHandler.DeleteSensor)

		// v2: archive-in-place delete with restore
		api.DELETE("/v2/sensors/:id", sensorHandler.ArchiveSensor)
		api.PUT("/v2/sensors/:id/restore", sensorHandler.RestoreSensor)

		// Websocket stream of sensor change events
		api.GET("/events", handlers.EventsHandler)
	}

	return ginRouter
}
