package controllers

import (
	"net/http"
	"time"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health. Always 200; the body reports whether
// the store is reachable.
func HealthCheck(c *gin.Context) {
	database := "connected"
	if !config.CheckDatabaseConnection() {
		database = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
