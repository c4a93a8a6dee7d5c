package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fulfill godoc
// @Summary     Dialogflow ES fulfillment webhook
// @Description Routes the matched intent (ANI, Participants, Weather, MemberInfo) to its handler.
// @Description Always answers 200; failures are reported inside fulfillmentText.
// @Tags        Fulfillment
// @Accept      json
// @Produce     json
// @Param       body body     object              true "Dialogflow WebhookRequest"
// @Success     200  {object} dialogflow.Response "Webhook response"
// @Failure     401  {object} response.Resp       "Unauthorized"
// @Failure     429  {object} response.Resp       "Too many requests"
// @Router      /webhook/fulfillment [POST]
func (h *handler) Fulfill(c *gin.Context) {
	ctx := c.Request.Context()

	event, err := h.processWebhookReq(c)
	if err != nil {
		h.l.Errorf(ctx, "fulfillment.delivery.http.Fulfill: invalid webhook request: %v", err)
		c.JSON(http.StatusOK, newErrorResp(err))
		return
	}

	text, err := h.uc.Fulfill(ctx, event)
	if err != nil {
		h.l.Errorf(ctx, "uc.Fulfill: intent=%s response_id=%s: %v", event.IntentName, event.ResponseID, err)
		c.JSON(http.StatusOK, newErrorResp(err))
		return
	}

	h.l.Infof(ctx, "fulfilled intent=%s response_id=%s", event.IntentName, event.ResponseID)
	c.JSON(http.StatusOK, newTextResp(text))
}
