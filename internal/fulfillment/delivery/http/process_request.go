package http

import (
	"github.com/gin-gonic/gin"

	"dialogflow-fulfillment/internal/model"
	"dialogflow-fulfillment/pkg/dialogflow"
)

// processWebhookReq decodes the Dialogflow webhook body into an IntentEvent.
func (h *handler) processWebhookReq(c *gin.Context) (model.IntentEvent, error) {
	req, err := dialogflow.Decode(c.Request.Body)
	if err != nil {
		return model.IntentEvent{}, err
	}
	return model.NewIntentEvent(req)
}
