package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/middleware"
	"dialogflow-fulfillment/pkg/genesys"
	"dialogflow-fulfillment/pkg/log"
	"dialogflow-fulfillment/pkg/openweather"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	tracing     bool

	// Upstream clients
	genesysClient     *genesys.Client
	genesysConfigured bool
	weatherClient     *openweather.Client

	// Domain settings
	attributes    fulfillment.AttributeWriter
	noInputEvents []string
	security      middleware.SecurityConfig

	// Set by mapHandlers
	intents []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Tracing     bool // wrap the engine in an OpenTelemetry server handler

	// Upstream clients
	GenesysClient     *genesys.Client
	GenesysConfigured bool
	WeatherClient     *openweather.Client

	// Fulfillment domain
	Attributes fulfillment.AttributeWriter // optional, defaults to the demo attribute set

	// Intent handler chain
	NoInputEvents []string

	// Webhook security
	Security       middleware.SecurityConfig
	TrustedProxies []string // peers whose X-Forwarded-For is honoured; empty trusts none
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		tracing:           cfg.Tracing,
		genesysClient:     cfg.GenesysClient,
		genesysConfigured: cfg.GenesysConfigured,
		weatherClient:     cfg.WeatherClient,
		attributes:        cfg.Attributes,
		noInputEvents:     cfg.NoInputEvents,
		security:          cfg.Security,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.genesysClient == nil {
		return errors.New("genesys client is required")
	}
	if srv.weatherClient == nil {
		return errors.New("weather client is required")
	}
	return nil
}

// Handler exposes the root handler, wrapped for tracing when enabled.
func (srv *HTTPServer) Handler() http.Handler {
	if srv.tracing {
		return telemetryHandler(srv.gin)
	}
	return srv.gin
}
