package http

import (
	"github.com/gin-gonic/gin"

	"dialogflow-fulfillment/internal/middleware"
)

// RegisterRoutes maps the no-input webhook behind the webhook guard.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/no-input", mw.WebhookGuard(), h.HandleNoInput)
}
