package router

// Log prefixes
const (
	LogPrefixDispatch = "internal.router.Dispatch"
)

// Error messages
const (
	ErrMsgMissingIntent     = "missing intent"
	ErrMsgUnsupportedIntent = "unsupported intent"
)
