package handlers

import (
	"net/http"
	"time"

	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// RootHandler is the service banner.
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Booking App API"})
}

// ServerTimeHandler returns the server clock in UTC. Clients use it to
// validate dates without trusting the local clock.
func ServerTimeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"server_time": time.Now().UTC().Format("2006-01-02T15:04:05.000") + "Z",
	})
}

// HealthHandler returns the latest background health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
