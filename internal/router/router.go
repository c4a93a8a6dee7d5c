package router

import (
	"context"

	"dialogflow-fulfillment/internal/model"
)

// Dispatch looks up the event's intent and runs exactly one handler.
// The handler's result or error is returned unchanged.
func (r *IntentRouter) Dispatch(ctx context.Context, event model.IntentEvent) (string, error) {
	if event.IntentName == "" {
		r.l.Warnf(ctx, "%s: %s (response_id=%s)", LogPrefixDispatch, ErrMsgMissingIntent, event.ResponseID)
		return "", &RoutingError{}
	}

	handler, ok := r.handlers[event.IntentName]
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %s", LogPrefixDispatch, ErrMsgUnsupportedIntent, event.IntentName)
		return "", &RoutingError{Intent: event.IntentName}
	}

	r.l.Debugf(ctx, "%s: intent=%s", LogPrefixDispatch, event.IntentName)
	return handler(ctx, event)
}
