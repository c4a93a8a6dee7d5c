package fulfillment

import (
	"context"

	"dialogflow-fulfillment/internal/model"
)

// UseCase defines the business logic interface for the fulfillment domain.
type UseCase interface {
	// Fulfill routes the event to its intent handler and returns the fulfillment text.
	Fulfill(ctx context.Context, event model.IntentEvent) (string, error)

	// Intents lists the intent display names this use case answers.
	Intents() []string
}
