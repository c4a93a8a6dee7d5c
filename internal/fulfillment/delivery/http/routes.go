package http

import (
	"github.com/gin-gonic/gin"

	"dialogflow-fulfillment/internal/middleware"
)

// RegisterRoutes maps the fulfillment webhook behind the webhook guard.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/fulfillment", mw.WebhookGuard(), h.Fulfill)
}
