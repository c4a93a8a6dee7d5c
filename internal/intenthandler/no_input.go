package intenthandler

import (
	"context"

	"dialogflow-fulfillment/internal/model"
	"dialogflow-fulfillment/pkg/log"
)

// DefaultNoInputEvents are the query texts Genesys Cloud sends when the caller stays silent.
var DefaultNoInputEvents = []string{"GENESYS_NO_INPUT", "NO_INPUT"}

// No-input replies, from the last attempt down to the first.
const (
	MsgNoInputGoodbye = "We seem to be having technical difficulties, please try again later.  Goodbye."
	MsgNoInputLast    = "I still didn't get that, please say that again."
	MsgNoInputFirst   = "I'm sorry but I didn't get that, could you repeat that?"
	MsgNoInputRepeat  = "I'm sorry but I still didn't get that, could you repeat that again?"
)

// NoInputHandler escalates re-prompts as the caller's no-input count approaches the limit.
type NoInputHandler struct {
	l      log.Logger
	events map[string]struct{}
}

// NewNoInputHandler creates the handler. Empty events fall back to DefaultNoInputEvents.
func NewNoInputHandler(l log.Logger, events []string) *NoInputHandler {
	if len(events) == 0 {
		events = DefaultNoInputEvents
	}
	set := make(map[string]struct{}, len(events))
	for _, e := range events {
		set[e] = struct{}{}
	}
	return &NoInputHandler{l: l, events: set}
}

func (h *NoInputHandler) Name() string { return "no-input" }

// CanHandle matches the query text exactly.
func (h *NoInputHandler) CanHandle(event model.IntentEvent) bool {
	_, ok := h.events[event.QueryText]
	return ok
}

// Handle picks the reply for the current count. Missing counters keep the agent's response.
func (h *NoInputHandler) Handle(ctx context.Context, event model.IntentEvent) (Result, error) {
	count, okCount := event.PayloadInt(model.PayloadNoInputCount)
	limit, okLimit := event.PayloadInt(model.PayloadNoInputLimit)
	if !okCount || !okLimit {
		h.l.Debugf(ctx, "intenthandler.NoInput: counters absent (count=%v limit=%v)", okCount, okLimit)
		return Unmodified(), nil
	}

	h.l.Infof(ctx, "intenthandler.NoInput: count=%d limit=%d", count, limit)

	switch {
	case count > limit:
		return Replacement(MsgNoInputGoodbye, true), nil
	case count == limit:
		return Replacement(MsgNoInputLast, false), nil
	case count == 1:
		return Replacement(MsgNoInputFirst, false), nil
	default:
		return Replacement(MsgNoInputRepeat, false), nil
	}
}
