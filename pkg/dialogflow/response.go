package dialogflow

import (
	df "google.golang.org/api/dialogflow/v2"
)

// Response is the webhook response body.
//
// EndInteraction is honoured by the Genesys Cloud Dialogflow integration and is not part of the
// Dialogflow WebhookResponse type, hence the local struct.
type Response struct {
	FulfillmentText     string                                     `json:"fulfillmentText,omitempty"`
	FulfillmentMessages []*df.GoogleCloudDialogflowV2IntentMessage `json:"fulfillmentMessages,omitempty"`
	EndInteraction      bool                                       `json:"endInteraction,omitempty"`
}

// TextResponse carries text as fulfillmentText only.
func TextResponse(text string) Response {
	return Response{FulfillmentText: text}
}

// MessagesResponse carries text as fulfillmentText plus one text message holding lines. With no
// lines the message repeats text.
func MessagesResponse(text string, endInteraction bool, lines ...string) Response {
	if len(lines) == 0 {
		lines = []string{text}
	}
	return Response{
		FulfillmentText:     text,
		FulfillmentMessages: []*df.GoogleCloudDialogflowV2IntentMessage{TextMessage(lines...)},
		EndInteraction:      endInteraction,
	}
}

// TextMessage wraps one or more lines in a text intent message.
func TextMessage(lines ...string) *df.GoogleCloudDialogflowV2IntentMessage {
	return &df.GoogleCloudDialogflowV2IntentMessage{
		Text: &df.GoogleCloudDialogflowV2IntentMessageText{Text: lines},
	}
}
