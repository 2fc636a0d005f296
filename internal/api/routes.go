package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/catnipandroid/blog-checker/internal/auth"
	"github.com/catnipandroid/blog-checker/internal/telemetry"
)

// RegisterRoutes wires the review endpoint and the metrics endpoint onto
// the router. An empty jwtSecret leaves the API open.
func RegisterRoutes(router *gin.Engine, h *Handler, jwtSecret string, metrics *telemetry.Metrics) {
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	if metrics != nil {
		v1.Use(metricsMiddleware(metrics))
	}
	v1.Use(auth.RequireToken(jwtSecret))
	v1.POST("/review", h.Review)
}

// metricsMiddleware records request counts and latency per API route.
// Uses the route template, not the raw URL, to keep label cardinality low.
func metricsMiddleware(m *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
