package httpserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the payload of the health endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Uptime  string `json:"uptime,omitempty"`
}

var healthState = struct {
	sync.Once
	startTime time.Time
}{}

// RegisterHealthRoutes adds the standard health endpoints:
//   - GET  /health        status, service name, version, uptime
//   - HEAD /health        lightweight probe for load balancers
//   - GET  /health/live   liveness probe
//   - GET  /health/ready  readiness probe
func RegisterHealthRoutes(router *gin.Engine, serviceName, version string) {
	healthState.Do(func() { healthState.startTime = time.Now() })

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: serviceName,
			Version: version,
			Uptime:  time.Since(healthState.startTime).Round(time.Second).String(),
		})
	})
	router.HEAD("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
