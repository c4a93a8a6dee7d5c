package usecase

import (
	"context"
	"errors"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/model"
)

const fieldConversationID = "conversation ID"

func conversationID(event model.IntentEvent) (string, error) {
	id := event.PayloadString(model.PayloadConversationID)
	if id == "" {
		return "", &fulfillment.MissingInputError{Field: fieldConversationID}
	}
	return id, nil
}

// upstream converts a repository failure into the caller-facing error for op.
// ErrNotFound becomes a NotFoundError for entity; anything else becomes an UpstreamError.
func (uc *implUseCase) upstream(ctx context.Context, op, entity string, err error) error {
	if errors.Is(err, fulfillment.ErrNotFound) {
		uc.l.Warnf(ctx, "usecase.fulfillment: %s not found: %v", entity, err)
		return &fulfillment.NotFoundError{Entity: entity}
	}
	uc.l.Errorf(ctx, "usecase.fulfillment: %s: %v", op, err)
	return &fulfillment.UpstreamError{Op: op, Err: err}
}
