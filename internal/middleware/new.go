package middleware

import (
	"dialogflow-fulfillment/pkg/log"
)

// Middleware bundles the gin middlewares shared by the webhook routes.
type Middleware struct {
	l        log.Logger
	security *SecurityValidator
}

// New creates the middleware set. A zero SecurityConfig disables every webhook check.
func New(l log.Logger, cfg SecurityConfig) Middleware {
	return Middleware{
		l:        l,
		security: NewSecurityValidator(cfg),
	}
}
