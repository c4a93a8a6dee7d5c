package http

import (
	"dialogflow-fulfillment/pkg/dialogflow"
)

// ErrorTextPrefix precedes the failure message in the fulfillment text.
const ErrorTextPrefix = "Something went wrong while processing fulfillment. - "

func newTextResp(text string) dialogflow.Response {
	return dialogflow.TextResponse(text)
}

func newErrorResp(err error) dialogflow.Response {
	return dialogflow.TextResponse(ErrorTextPrefix + err.Error())
}
