package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	fulfillmentHTTP "dialogflow-fulfillment/internal/fulfillment/delivery/http"
	genesysRepo "dialogflow-fulfillment/internal/fulfillment/repository/genesys"
	weatherRepo "dialogflow-fulfillment/internal/fulfillment/repository/openweather"
	fulfillmentUC "dialogflow-fulfillment/internal/fulfillment/usecase"
	"dialogflow-fulfillment/internal/intenthandler"
	intentHandlerHTTP "dialogflow-fulfillment/internal/intenthandler/delivery/http"
	"dialogflow-fulfillment/internal/middleware"
)

// setupFulfillmentDomain initializes the fulfillment domain and registers POST /webhook/fulfillment.
//
// Layering, as for every domain:
//  1. Repository:   repo := genesysRepo.New(client, configured, srv.l)
//  2. UseCase:      uc := fulfillmentUC.New(srv.l, repo, ...)
//  3. HTTP Handler: h := fulfillmentHTTP.New(srv.l, uc)
//  4. Routes:       fulfillmentHTTP.RegisterRoutes(rg, h, mw)
func (srv *HTTPServer) setupFulfillmentDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repositories
	contactCenter := genesysRepo.New(srv.genesysClient, srv.genesysConfigured, srv.l)
	weather := weatherRepo.New(srv.weatherClient, srv.l)

	// 2. UseCase
	uc, err := fulfillmentUC.New(srv.l, contactCenter, weather, srv.attributes)
	if err != nil {
		return err
	}
	srv.intents = uc.Intents()

	// 3. HTTP Handler
	h := fulfillmentHTTP.New(srv.l, uc)

	// 4. Routes
	fulfillmentHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Fulfillment route registered at POST /webhook/fulfillment for intents %v", srv.intents)
	return nil
}

// setupIntentHandlerDomain registers POST /webhook/no-input.
// Chain order is significant: the first handler whose CanHandle accepts the request wins,
// and the default handler, which always fails, is appended by intenthandler.New.
func (srv *HTTPServer) setupIntentHandlerDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) {
	chain := intenthandler.New(srv.l,
		intenthandler.NewNoInputHandler(srv.l, srv.noInputEvents),
	)

	h := intentHandlerHTTP.New(srv.l, chain)
	intentHandlerHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "No-input route registered at POST /webhook/no-input")
}
