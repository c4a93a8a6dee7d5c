package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dialogflow-fulfillment/config"
	_ "dialogflow-fulfillment/docs" // Swagger docs
	"dialogflow-fulfillment/internal/httpserver"
	"dialogflow-fulfillment/internal/middleware"
	"dialogflow-fulfillment/pkg/genesys"
	"dialogflow-fulfillment/pkg/log"
	"dialogflow-fulfillment/pkg/openweather"
	"dialogflow-fulfillment/pkg/telemetry"
)

// @title       Dialogflow Fulfillment API
// @description Dialogflow ES webhook fulfillment for Genesys Cloud bots: ANI, participants, weather and member lookups, plus no-input re-prompts.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Dialogflow fulfillment...")
	logger.Infof(ctx, "Environment: %s", cfg.App.Environment)

	// 3. Tracing (optional)
	if cfg.Telemetry.Enabled {
		shutdown, tErr := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.PrettyPrint, logger)
		if tErr != nil {
			logger.Warnf(ctx, "Tracing disabled: %v", tErr)
		} else {
			defer func() {
				if sErr := shutdown(context.Background()); sErr != nil {
					logger.Warnf(ctx, "Tracer shutdown: %v", sErr)
				}
			}()
		}
	}

	// 4. Genesys Cloud session and client
	region, known := genesys.ResolveRegion(cfg.Genesys.Region)
	if !known {
		logger.Warnf(ctx, "Unknown Genesys Cloud region %q, falling back to %s", cfg.Genesys.Region, region.Name)
	}
	logger.Infof(ctx, "Genesys Cloud region: %s (%s)", region.Name, region.APIURL())

	genesysHTTP := telemetry.HTTPClient(&http.Client{Timeout: parseTimeout(cfg.Genesys.Timeout, genesys.DefaultTimeout)})
	session := genesys.NewSession(genesys.SessionConfig{
		ClientID:     cfg.Genesys.ClientID,
		ClientSecret: cfg.Genesys.ClientSecret,
		TokenURL:     region.TokenURL(),
		HTTPClient:   genesysHTTP,
	})
	genesysClient := genesys.NewClient(region.APIURL(), session)

	if !cfg.Genesys.Configured() {
		logger.Warn(ctx, "CLIENT_ID or CLIENT_SECRET is missing: Genesys Cloud intents will fail until configured")
	}

	// 5. OpenWeatherMap client
	weatherClient := openweather.NewClient(
		cfg.OpenWeather.AppID,
		telemetry.HTTPClient(&http.Client{Timeout: parseTimeout(cfg.OpenWeather.Timeout, openweather.DefaultTimeout)}),
	)
	weatherClient.SetCountryCode(cfg.OpenWeather.CountryCode)
	if cfg.OpenWeather.AppID == "" {
		logger.Warn(ctx, "OPEN_WEATHER_APP_ID is missing: the Weather intent will fail")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.App.Environment,
		Tracing:           cfg.Telemetry.Enabled,
		GenesysClient:     genesysClient,
		GenesysConfigured: cfg.Genesys.Configured(),
		WeatherClient:     weatherClient,
		NoInputEvents:     cfg.NoInput.Events,
		Security: middleware.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
		TrustedProxies: cfg.Webhook.TrustedProxies,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Webhook URLs for the Dialogflow console: configured, or auto-detected through ngrok
	go logWebhookURLs(ctx, logger, cfg.Webhook.PublicURL, cfg.Webhook.NgrokAPIURL)

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseTimeout(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
