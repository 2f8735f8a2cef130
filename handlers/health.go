package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// RegisterHealth registers the public liveness endpoint.
func RegisterHealth(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		now := time.Now()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": now.UnixMilli(),
			"date":      now.Format(time.RFC3339),
			"status":    "ok",
			"uptime":    time.Since(startTime).Seconds(),
		})
	})
}
