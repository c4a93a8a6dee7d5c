package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Application
	App AppConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Telemetry  TelemetryConfig

	// Upstreams
	Genesys     GenesysConfig
	OpenWeather OpenWeatherConfig

	// Intent handler chain
	NoInput NoInputConfig

	// Webhooks
	Webhook WebhookConfig
}

// AppConfig is kept apart from the flat ENVIRONMENT variable, which names the Genesys Cloud region.
type AppConfig struct {
	Environment string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelemetryConfig struct {
	Enabled     bool
	ServiceName string
	PrettyPrint bool
}

// GenesysConfig holds the OAuth client used for the client-credentials grant.
type GenesysConfig struct {
	ClientID     string
	ClientSecret string
	Region       string // e.g. us_east_1; unknown values fall back to us_east_1
	Timeout      string
}

// Configured reports whether both OAuth client values are present.
func (c GenesysConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type OpenWeatherConfig struct {
	AppID       string
	CountryCode string
	Timeout     string
}

type NoInputConfig struct {
	Events []string // Query texts treated as a no-input event
}

type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
	TrustedProxies  []string // Peers allowed to set X-Forwarded-For / X-Real-IP; none by default
	PublicURL       string // Public base URL logged at start-up; detected through ngrok when empty
	NgrokAPIURL     string
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// App & Server
	cfg.App.Environment = viper.GetString("app.environment")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Telemetry.Enabled = viper.GetBool("telemetry.enabled")
	cfg.Telemetry.ServiceName = viper.GetString("telemetry.service_name")
	cfg.Telemetry.PrettyPrint = viper.GetBool("telemetry.pretty_print")

	// Genesys Cloud: CLIENT_ID, CLIENT_SECRET and ENVIRONMENT are the names used by the
	// Genesys Cloud Lambda deployment and win over the config file.
	cfg.Genesys.ClientID = expandEnvVar(viper.GetString("genesys.client_id"))
	cfg.Genesys.ClientSecret = expandEnvVar(viper.GetString("genesys.client_secret"))
	cfg.Genesys.Region = viper.GetString("genesys.region")
	cfg.Genesys.Timeout = viper.GetString("genesys.timeout")
	if clientID := viper.GetString("client_id"); clientID != "" {
		cfg.Genesys.ClientID = clientID
	}
	if clientSecret := viper.GetString("client_secret"); clientSecret != "" {
		cfg.Genesys.ClientSecret = clientSecret
	}
	if region := viper.GetString("environment"); region != "" {
		cfg.Genesys.Region = region
	}

	// OpenWeatherMap
	cfg.OpenWeather.AppID = expandEnvVar(viper.GetString("openweather.app_id"))
	cfg.OpenWeather.CountryCode = viper.GetString("openweather.country_code")
	cfg.OpenWeather.Timeout = viper.GetString("openweather.timeout")
	if appID := viper.GetString("open_weather_app_id"); appID != "" {
		cfg.OpenWeather.AppID = appID
	}

	// No-input chain
	cfg.NoInput.Events = splitList(viper.GetString("no_input.events"))
	if len(cfg.NoInput.Events) == 0 {
		cfg.NoInput.Events = viper.GetStringSlice("no_input.events")
	}

	// Webhooks
	cfg.Webhook.Secret = expandEnvVar(viper.GetString("webhook.secret"))
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.PublicURL = viper.GetString("webhook.public_url")
	cfg.Webhook.NgrokAPIURL = viper.GetString("webhook.ngrok_api_url")

	// Split allowed IPs since viper might not parse array seamlessly from env
	cfg.Webhook.AllowedIPs = splitList(viper.GetString("webhook.allowed_ips"))
	if len(cfg.Webhook.AllowedIPs) == 0 {
		cfg.Webhook.AllowedIPs = viper.GetStringSlice("webhook.allowed_ips")
	}
	cfg.Webhook.TrustedProxies = splitList(viper.GetString("webhook.trusted_proxies"))
	if len(cfg.Webhook.TrustedProxies) == 0 {
		cfg.Webhook.TrustedProxies = viper.GetStringSlice("webhook.trusted_proxies")
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.service_name", "dialogflow-fulfillment")
	viper.SetDefault("genesys.region", "us_east_1")
	viper.SetDefault("genesys.timeout", "15s")
	viper.SetDefault("openweather.country_code", "us")
	viper.SetDefault("openweather.timeout", "10s")
	viper.SetDefault("webhook.rate_limit_per_min", 600)
}

// validate rejects values the server cannot start with.
func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", cfg.HTTPServer.Port)
	}
	if cfg.Webhook.RateLimitPerMin < 0 {
		return fmt.Errorf("webhook.rate_limit_per_min must not be negative")
	}
	return nil
}

// splitList splits a comma-separated env value, dropping blanks. YAML lists are read with
// GetStringSlice instead.
func splitList(raw string) []string {
	if raw == "" || strings.HasPrefix(raw, "[") {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
