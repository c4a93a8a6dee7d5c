package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dialogflow-fulfillment/pkg/log"
	"dialogflow-fulfillment/pkg/response"
)

// RequestID propagates X-Request-ID, generating one when absent, and stores it in the request
// context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// WebhookGuard applies the IP allow-list, the rate limit and the shared secret, in that order.
func (m Middleware) WebhookGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ip := c.ClientIP()

		if err := m.security.ValidateIPAddress(ip); err != nil {
			m.l.Warnf(ctx, "middleware.WebhookGuard: %v", err)
			response.Forbidden(c)
			return
		}

		if err := m.security.CheckRateLimit(ip); err != nil {
			m.l.Warnf(ctx, "middleware.WebhookGuard: %v", err)
			response.TooManyRequests(c)
			return
		}

		if err := m.security.ValidateSecret(c.Request); err != nil {
			m.l.Warnf(ctx, "middleware.WebhookGuard: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Next()
	}
}
