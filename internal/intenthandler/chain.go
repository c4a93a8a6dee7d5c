package intenthandler

import (
	"context"

	"dialogflow-fulfillment/internal/model"
	"dialogflow-fulfillment/pkg/log"
)

// Chain selects the first handler whose CanHandle accepts an event.
// Registration order is significant and fixed after New.
type Chain struct {
	l        log.Logger
	handlers []Handler
	fallback Handler
}

// New builds a chain over handlers, in the given order, ending with the default handler.
func New(l log.Logger, handlers ...Handler) *Chain {
	hs := make([]Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			hs = append(hs, h)
		}
	}
	return &Chain{
		l:        l,
		handlers: hs,
		fallback: defaultHandler{},
	}
}

// Select returns the first accepting handler, or the default handler.
func (c *Chain) Select(event model.IntentEvent) Handler {
	for _, h := range c.handlers {
		if h.CanHandle(event) {
			return h
		}
	}
	return c.fallback
}

// Handle runs the selected handler.
func (c *Chain) Handle(ctx context.Context, event model.IntentEvent) (Result, error) {
	h := c.Select(event)
	c.l.Debugf(ctx, "intenthandler.Chain: query_text=%q handler=%s", event.QueryText, h.Name())
	return h.Handle(ctx, event)
}

// defaultHandler accepts everything and always fails.
type defaultHandler struct{}

func (defaultHandler) Name() string { return "default" }

func (defaultHandler) CanHandle(model.IntentEvent) bool { return true }

func (defaultHandler) Handle(context.Context, model.IntentEvent) (Result, error) {
	return Result{}, ErrUnroutable
}
