package middleware

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	Secret          string   // Shared secret, sent as X-Webhook-Secret or the basic auth password (optional)
	AllowedIPs      []string // IP or CIDR allow-list (optional)
	RateLimitPerMin int      // Max requests per minute per client IP, 0 disables
}

// Header names
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderWebhookSecret = "X-Webhook-Secret"
)
