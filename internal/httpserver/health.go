package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dialogflow-fulfillment/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Dialogflow fulfillment bridge"
	HealthVersion = "1.0.0"
	ServiceName   = "dialogflow-fulfillment"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once Genesys Cloud credentials are configured.
// Weather lookups do not need them, so the route stays registered either way.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Genesys Cloud credentials missing"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	body := gin.H{
		"status":             "ready",
		"message":            HealthMessage,
		"version":            HealthVersion,
		"service":            ServiceName,
		"intents":            srv.intents,
		"genesys_configured": srv.genesysConfigured,
	}

	if !srv.genesysConfigured {
		body["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response.NewOKResp(body))
		return
	}

	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
