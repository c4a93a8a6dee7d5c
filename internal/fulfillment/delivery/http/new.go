package http

import (
	"github.com/gin-gonic/gin"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/pkg/log"
)

// Handler is the public interface for the fulfillment HTTP delivery layer.
type Handler interface {
	Fulfill(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc fulfillment.UseCase
}

// New creates a new HTTP handler for the fulfillment domain.
func New(l log.Logger, uc fulfillment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
