package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"playday/utils"
)

// HealthHandler reports liveness plus the latest Redis health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
