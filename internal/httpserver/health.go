package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-input/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Smart task input API"
	HealthVersion = "1.0.0"
	ServiceName   = "smart-task-input"
)

func (srv HTTPServer) probe(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"uptime":  time.Since(srv.startedAt).Round(time.Second).String(),
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.probe(c, "healthy")
}

// readyCheck reports ready once routes are mapped, which New guarantees.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.probe(c, "ready")
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	srv.probe(c, "alive")
}
