package router

import (
	"context"

	"dialogflow-fulfillment/internal/model"
)

// HandlerFunc produces the fulfillment text for one intent.
type HandlerFunc func(ctx context.Context, event model.IntentEvent) (string, error)

// Route binds an intent display name to its handler.
type Route struct {
	Intent  string
	Handler HandlerFunc
}
