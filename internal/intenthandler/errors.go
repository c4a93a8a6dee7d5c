package intenthandler

import "errors"

// ErrUnroutable is returned when no handler in the chain accepted the event. The text is shown to
// bot operators as the webhook error message.
var ErrUnroutable = errors.New("Unable to find a handler for this request.")
