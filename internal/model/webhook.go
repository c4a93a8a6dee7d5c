package model

import "dialogflow-fulfillment/pkg/dialogflow"

// NewIntentEvent flattens a decoded webhook request into an IntentEvent.
func NewIntentEvent(req *dialogflow.Request) (IntentEvent, error) {
	params, err := req.Parameters()
	if err != nil {
		return IntentEvent{}, err
	}
	payload, err := req.Payload()
	if err != nil {
		return IntentEvent{}, err
	}

	return IntentEvent{
		ResponseID:      req.ResponseID(),
		Session:         req.Session(),
		IntentName:      req.IntentName(),
		QueryText:       req.QueryText(),
		FulfillmentText: req.FulfillmentText(),
		Parameters:      params,
		Payload:         payload,
	}, nil
}
