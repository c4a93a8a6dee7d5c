// Package dialogflow decodes Dialogflow ES webhook requests and builds webhook responses.
package dialogflow

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	df "google.golang.org/api/dialogflow/v2"
	"google.golang.org/api/googleapi"
)

// ErrEmptyBody is returned when the webhook body is empty.
var ErrEmptyBody = errors.New("dialogflow: empty webhook body")

// Request is a decoded Dialogflow ES webhook request.
type Request struct {
	raw *df.GoogleCloudDialogflowV2WebhookRequest
}

// Decode reads a WebhookRequest from r.
func Decode(r io.Reader) (*Request, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dialogflow: read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}

	var raw df.GoogleCloudDialogflowV2WebhookRequest
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("dialogflow: decode webhook request: %w", err)
	}
	return &Request{raw: &raw}, nil
}

// ResponseID is the unique id Dialogflow assigned to this request.
func (r *Request) ResponseID() string {
	return r.raw.ResponseId
}

// Session is the Dialogflow session path.
func (r *Request) Session() string {
	return r.raw.Session
}

// IntentName is the matched intent's display name, or "" when no intent was matched.
func (r *Request) IntentName() string {
	if r.raw.QueryResult == nil || r.raw.QueryResult.Intent == nil {
		return ""
	}
	return r.raw.QueryResult.Intent.DisplayName
}

// QueryText is the user input or the event name that triggered the request.
func (r *Request) QueryText() string {
	if r.raw.QueryResult == nil {
		return ""
	}
	return r.raw.QueryResult.QueryText
}

// FulfillmentText is the agent's own response text.
func (r *Request) FulfillmentText() string {
	if r.raw.QueryResult == nil {
		return ""
	}
	return r.raw.QueryResult.FulfillmentText
}

// Parameters decodes queryResult.parameters. A missing object yields nil.
func (r *Request) Parameters() (map[string]any, error) {
	if r.raw.QueryResult == nil {
		return nil, nil
	}
	return decodeObject(r.raw.QueryResult.Parameters, "parameters")
}

// Payload decodes originalDetectIntentRequest.payload. A missing object yields nil.
func (r *Request) Payload() (map[string]any, error) {
	if r.raw.OriginalDetectIntentRequest == nil {
		return nil, nil
	}
	return decodeObject(r.raw.OriginalDetectIntentRequest.Payload, "payload")
}

func decodeObject(raw googleapi.RawMessage, field string) (map[string]any, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("dialogflow: decode %s: %w", field, err)
	}
	return out, nil
}
