package intenthandler

import "dialogflow-fulfillment/internal/model"

// ResultKind tells the caller whether to replace the agent's response.
type ResultKind int

const (
	// KindUnmodified keeps the agent's own response.
	KindUnmodified ResultKind = iota
	// KindReplacement substitutes Result.Response.
	KindReplacement
)

// Result is the outcome of a handled event.
type Result struct {
	Kind     ResultKind
	Response model.FulfillmentResponse
}

// Unmodified returns a result that leaves the agent's response alone.
func Unmodified() Result {
	return Result{Kind: KindUnmodified}
}

// Replacement returns a result carrying text both as the fulfillment text and as its only message.
func Replacement(text string, endInteraction bool) Result {
	return Result{
		Kind: KindReplacement,
		Response: model.FulfillmentResponse{
			Text:           text,
			Messages:       []string{text},
			EndInteraction: endInteraction,
		},
	}
}

// IsUnmodified reports whether the result keeps the agent's response.
func (r Result) IsUnmodified() bool {
	return r.Kind == KindUnmodified
}
