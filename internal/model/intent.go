package model

import (
	"math"
	"strconv"
	"strings"
)

// Payload keys set by the Genesys Cloud Dialogflow integration.
const (
	PayloadConversationID = "Genesys-Conversation-Id"
	PayloadNoInputCount   = "Genesys-No-Input-Count"
	PayloadNoInputLimit   = "Genesys-No-Input-Limit"
)

// IntentEvent is one intent-detection event, flattened from the webhook request.
type IntentEvent struct {
	ResponseID      string         // Dialogflow response id
	Session         string         // Dialogflow session path
	IntentName      string         // Matched intent display name, the routing key
	QueryText       string         // User input or triggering event name
	FulfillmentText string         // Agent's own response text
	Parameters      map[string]any // Extracted intent parameters
	Payload         map[string]any // Provider payload from originalDetectIntentRequest
}

// Param returns a parameter as a trimmed string. Numbers are formatted without exponent.
func (e IntentEvent) Param(name string) string {
	return scalarString(e.Parameters[name])
}

// PayloadString returns a payload value as a trimmed string.
func (e IntentEvent) PayloadString(key string) string {
	return scalarString(e.Payload[key])
}

// PayloadInt reads an integer payload value given as a JSON number or a numeric string.
// Numbers with a fractional part are rejected.
func (e IntentEvent) PayloadInt(key string) (int, bool) {
	switch v := e.Payload[key].(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// FulfillmentResponse is the text returned to the conversational platform.
type FulfillmentResponse struct {
	Text           string
	Messages       []string // Lines of the text message; empty repeats Text
	EndInteraction bool
}

// Participant is one side of a contact-center conversation.
type Participant struct {
	ID         string
	Name       string
	Purpose    string
	Type       string            // e.g. "Internal", "External"
	Attributes map[string]string // Custom participant attributes
}
