package intenthandler

import (
	"context"
	"errors"
	"testing"

	"dialogflow-fulfillment/internal/model"
	"dialogflow-fulfillment/pkg/log"
)

type fakeHandler struct {
	name    string
	accept  bool
	handled int
}

func (f *fakeHandler) Name() string { return f.name }
func (f *fakeHandler) CanHandle(model.IntentEvent) bool { return f.accept }
func (f *fakeHandler) Handle(context.Context, model.IntentEvent) (Result, error) {
	f.handled++
	return Replacement(f.name, false), nil
}

func TestChain_Select(t *testing.T) {
	t.Run("first match wins", func(t *testing.T) {
		first := &fakeHandler{name: "first", accept: true}
		second := &fakeHandler{name: "second", accept: true}
		c := New(log.NewNop(), first, second)

		if got := c.Select(model.IntentEvent{}); got != first {
			t.Errorf("Select() = %s, want first", got.Name())
		}

		res, err := c.Handle(context.Background(), model.IntentEvent{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Response.Text != "first" || first.handled != 1 || second.handled != 0 {
			t.Errorf("unexpected dispatch: res=%+v first=%d second=%d", res, first.handled, second.handled)
		}
	})

	t.Run("skips handlers that decline", func(t *testing.T) {
		declines := &fakeHandler{name: "declines"}
		accepts := &fakeHandler{name: "accepts", accept: true}
		c := New(log.NewNop(), declines, nil, accepts)

		if got := c.Select(model.IntentEvent{}); got != accepts {
			t.Errorf("Select() = %s, want accepts", got.Name())
		}

		res, err := c.Handle(context.Background(), model.IntentEvent{})
		if errors.Is(err, ErrUnroutable) {
			t.Fatal("default handler must not run when a handler accepts")
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsUnmodified() || res.Response.Text != "accepts" {
			t.Errorf("Handle() = %+v, want the accepting handler's result", res)
		}
		if declines.handled != 0 {
			t.Errorf("declining handler ran %d times", declines.handled)
		}
		if accepts.handled != 1 {
			t.Errorf("accepting handler ran %d times, want 1", accepts.handled)
		}
	})

	t.Run("falls back to default", func(t *testing.T) {
		c := New(log.NewNop(), &fakeHandler{name: "declines"})

		if got := c.Select(model.IntentEvent{}); got.Name() != "default" {
			t.Errorf("Select() = %s, want default", got.Name())
		}
		if _, err := c.Handle(context.Background(), model.IntentEvent{}); !errors.Is(err, ErrUnroutable) {
			t.Errorf("expected ErrUnroutable, got %v", err)
		}
	})

	t.Run("empty chain", func(t *testing.T) {
		c := New(log.NewNop())
		if _, err := c.Handle(context.Background(), model.IntentEvent{QueryText: "GENESYS_NO_INPUT"}); !errors.Is(err, ErrUnroutable) {
			t.Errorf("expected ErrUnroutable, got %v", err)
		}
	})
}
