package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dialogflow-fulfillment/internal/model"
	"dialogflow-fulfillment/pkg/dialogflow"
)

// HandleNoInput godoc
// @Summary     No-input re-prompt webhook
// @Description Replaces the agent response when the caller stayed silent. Answers {} to keep the
// @Description agent response and 500 when no handler accepts the request.
// @Tags        Fulfillment
// @Accept      json
// @Produce     json
// @Param       body body     object              true "Dialogflow WebhookRequest"
// @Success     200  {object} dialogflow.Response "Webhook response"
// @Failure     500  {object} errorResp           "No handler accepted the request"
// @Router      /webhook/no-input [POST]
func (h *handler) HandleNoInput(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := dialogflow.Decode(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "intenthandler.delivery.http.HandleNoInput: invalid webhook request: %v", err)
		c.JSON(http.StatusInternalServerError, newErrorResp(err))
		return
	}

	event, err := model.NewIntentEvent(req)
	if err != nil {
		h.l.Errorf(ctx, "intenthandler.delivery.http.HandleNoInput: invalid webhook request: %v", err)
		c.JSON(http.StatusInternalServerError, newErrorResp(err))
		return
	}

	res, err := h.chain.Handle(ctx, event)
	if err != nil {
		h.l.Warnf(ctx, "chain.Handle: query_text=%q: %v", event.QueryText, err)
		c.JSON(http.StatusInternalServerError, newErrorResp(err))
		return
	}

	c.JSON(http.StatusOK, newResultResp(res))
}
