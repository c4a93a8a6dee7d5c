package router

import (
	"errors"
	"fmt"
)

// ErrDuplicateIntent is returned by New when two routes share an intent name.
var ErrDuplicateIntent = errors.New("duplicate intent route")

// RoutingError reports an event that cannot be dispatched. No handler ran.
type RoutingError struct {
	Intent string // empty when the event carried no intent
}

func (e *RoutingError) Error() string {
	if e.Intent == "" {
		return ErrMsgMissingIntent
	}
	return fmt.Sprintf("%s: %s", ErrMsgUnsupportedIntent, e.Intent)
}
