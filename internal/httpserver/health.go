package httpserver

import (
	"events-portal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Events portal is up"
	HealthVersion = "1.0.0"
	ServiceName   = "events-portal"
)

func (srv HTTPServer) probe(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":      status,
			"message":     HealthMessage,
			"version":     HealthVersion,
			"service":     ServiceName,
			"environment": srv.environment,
		})
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { srv.probe("healthy")(c) }

// readyCheck reports ready once routes are mapped; upstream availability is not probed.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { srv.probe("ready")(c) }

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { srv.probe("alive")(c) }
