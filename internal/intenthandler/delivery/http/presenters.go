package http

import (
	"dialogflow-fulfillment/internal/intenthandler"
	"dialogflow-fulfillment/internal/model"
	"dialogflow-fulfillment/pkg/dialogflow"
)

type errorBody struct {
	Message string `json:"message"`
}

// errorResp keeps the agent's own response: Dialogflow ignores webhook answers with a 5xx status.
type errorResp struct {
	Error errorBody `json:"error"`
}

func newErrorResp(err error) errorResp {
	return errorResp{Error: errorBody{Message: err.Error()}}
}

func newResultResp(res intenthandler.Result) dialogflow.Response {
	if res.IsUnmodified() {
		return dialogflow.Response{}
	}
	return toWebhookResp(res.Response)
}

func toWebhookResp(r model.FulfillmentResponse) dialogflow.Response {
	return dialogflow.MessagesResponse(r.Text, r.EndInteraction, r.Messages...)
}
