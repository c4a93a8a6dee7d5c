package usecase

import (
	"context"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/model"
)

// Ensure implUseCase implements UseCase interface
var _ fulfillment.UseCase = (*implUseCase)(nil)

// Fulfill dispatches the event through the intent table.
func (uc *implUseCase) Fulfill(ctx context.Context, event model.IntentEvent) (string, error) {
	return uc.router.Dispatch(ctx, event)
}

// Intents lists the routed intent names.
func (uc *implUseCase) Intents() []string {
	return uc.router.Intents()
}
