package http

import (
	"github.com/gin-gonic/gin"

	"dialogflow-fulfillment/internal/intenthandler"
	"dialogflow-fulfillment/pkg/log"
)

// Handler is the public interface for the intent handler chain HTTP delivery layer.
type Handler interface {
	HandleNoInput(c *gin.Context)
}

type handler struct {
	l     log.Logger
	chain *intenthandler.Chain
}

// New creates a new HTTP handler over the chain.
func New(l log.Logger, chain *intenthandler.Chain) *handler {
	return &handler{
		l:     l,
		chain: chain,
	}
}
