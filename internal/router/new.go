package router

import (
	"context"
	"fmt"
	"sort"

	"dialogflow-fulfillment/internal/model"
	"dialogflow-fulfillment/pkg/log"
)

// Router dispatches intent events to their handlers.
type Router interface {
	Dispatch(ctx context.Context, event model.IntentEvent) (string, error)
	Intents() []string
}

// IntentRouter is a fixed dispatch table keyed by intent display name.
type IntentRouter struct {
	handlers map[string]HandlerFunc
	l        log.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New builds the dispatch table. The table is immutable once built.
func New(l log.Logger, routes ...Route) (*IntentRouter, error) {
	handlers := make(map[string]HandlerFunc, len(routes))
	for _, r := range routes {
		if r.Intent == "" || r.Handler == nil {
			return nil, fmt.Errorf("invalid route %q", r.Intent)
		}
		if _, exists := handlers[r.Intent]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIntent, r.Intent)
		}
		handlers[r.Intent] = r.Handler
	}
	return &IntentRouter{
		handlers: handlers,
		l:        l,
	}, nil
}

// Intents lists the routed intent names in sorted order.
func (r *IntentRouter) Intents() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
