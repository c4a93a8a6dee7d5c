package intenthandler

import (
	"context"

	"dialogflow-fulfillment/internal/model"
)

// Handler is one candidate in the chain.
type Handler interface {
	// Name identifies the handler in logs.
	Name() string

	// CanHandle reports whether this handler wants the event. It must not have side effects.
	CanHandle(event model.IntentEvent) bool

	// Handle produces the outcome for an event this handler accepted.
	Handle(ctx context.Context, event model.IntentEvent) (Result, error)
}
