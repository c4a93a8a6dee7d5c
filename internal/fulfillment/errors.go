package fulfillment

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when the upstream answered but the expected data is absent.
var ErrNotFound = errors.New("not found")

// Upstream operations, used as the caller-facing text of UpstreamError.
const (
	OpGetANI          = "Unable to get ANI."
	OpGetParticipants = "Unable to get participants."
	OpPatchAttributes = "Unable to patch attributes."
	OpGetWeather      = "Unable to get weather."
	OpGetMemberInfo   = "Unable to get member information."
)

// MissingInputError reports a required event field that was absent or empty.
type MissingInputError struct {
	Field string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("Missing %s", e.Field)
}

// NotFoundError reports that the upstream data did not contain the expected entity.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Unable to find %s.", e.Entity)
}

// UpstreamError wraps a failed external call. Error only reports the operation; the cause is
// available through errors.Unwrap.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Op
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
