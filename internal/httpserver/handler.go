package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dialogflow-fulfillment/internal/middleware"
	"dialogflow-fulfillment/pkg/response"
	"dialogflow-fulfillment/pkg/telemetry"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.security)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.CustomRecovery(srv.recoverPanic))
	srv.gin.Use(mw.RequestID())
	if srv.mode == gin.DebugMode {
		srv.gin.Use(gin.Logger())
	}

	srv.l.Infof(context.Background(), "HTTP middlewares registered (environment: %s)", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /webhook.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	webhook := srv.gin.Group("/webhook")

	if err := srv.setupFulfillmentDomain(ctx, webhook, mw); err != nil {
		return err
	}
	srv.setupIntentHandlerDomain(ctx, webhook, mw)

	return nil
}

// recoverPanic answers 500 with the standard envelope.
func (srv *HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	err := fmt.Errorf("panic: %v", recovered)
	srv.l.Errorf(c.Request.Context(), "httpserver: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.InternalError(c, err)
}

func telemetryHandler(engine *gin.Engine) http.Handler {
	return telemetry.Handler(engine, ServiceName)
}
