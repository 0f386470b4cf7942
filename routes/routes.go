package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"playday/handlers"
)

// RegisterTripRoutes registers all endpoints for the trip planning engine.
func RegisterTripRoutes(r *gin.Engine, th *handlers.TripHandler) {
	r.POST("/api/plan-trip", th.PlanTripHandler)

	tripGroup := r.Group("/api/trip")
	{
		tripGroup.GET("/:sessionID", th.GetTripHandler)
		tripGroup.PUT("/:sessionID/reorder", th.ReorderHandler)
		tripGroup.PUT("/:sessionID/activities/:activityID/complete", th.CompleteHandler)
		tripGroup.PUT("/:sessionID/activities/:activityID/note", th.NoteHandler)
		tripGroup.DELETE("/:sessionID", th.DiscardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, th *handlers.TripHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterTripRoutes(r, th)
	RegisterHealthRoute(r)
}
