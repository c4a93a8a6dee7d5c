package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"dialogflow-fulfillment/internal/middleware"
	"dialogflow-fulfillment/pkg/genesys"
	"dialogflow-fulfillment/pkg/log"
	"dialogflow-fulfillment/pkg/openweather"
)

func newTestServer(t *testing.T, configured bool, tracing bool) *HTTPServer {
	t.Helper()
	region, _ := genesys.ResolveRegion("")
	session := genesys.NewSession(genesys.SessionConfig{TokenURL: region.TokenURL()})

	srv, err := New(log.NewNop(), Config{
		Port:              8080,
		Mode:              gin.TestMode,
		Environment:       "test",
		Tracing:           tracing,
		GenesysClient:     genesys.NewClient(region.APIURL(), session),
		GenesysConfigured: configured,
		WeatherClient:     openweather.NewClient("", nil),
		Security:          middleware.SecurityConfig{Secret: "s3cret"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func do(srv *HTTPServer, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(nil, Config{Port: 1, Mode: gin.TestMode}); err == nil {
		t.Error("expected error without logger")
	}
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected error without port")
	}
	if _, err := New(log.NewNop(), Config{Port: 1, Mode: gin.TestMode}); err == nil {
		t.Error("expected error without upstream clients")
	}
}

func TestNew_TrustedProxies(t *testing.T) {
	region, _ := genesys.ResolveRegion("")
	cfg := Config{
		Port:           8080,
		Mode:           gin.TestMode,
		GenesysClient:  genesys.NewClient(region.APIURL(), genesys.NewSession(genesys.SessionConfig{})),
		WeatherClient:  openweather.NewClient("", nil),
		TrustedProxies: []string{"not-an-ip"},
	}
	if _, err := New(log.NewNop(), cfg); err == nil {
		t.Error("expected error for an invalid trusted proxy")
	}

	cfg.TrustedProxies = []string{"10.0.0.0/8"}
	if _, err := New(log.NewNop(), cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSystemRoutes(t *testing.T) {
	t.Run("health and live", func(t *testing.T) {
		srv := newTestServer(t, true, false)
		for _, path := range []string{"/health", "/live"} {
			if w := do(srv, http.MethodGet, path, "", nil); w.Code != http.StatusOK {
				t.Errorf("%s status = %d", path, w.Code)
			}
		}
	})

	t.Run("ready lists intents", func(t *testing.T) {
		srv := newTestServer(t, true, true)
		w := do(srv, http.MethodGet, "/ready", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		var body struct {
			Data struct {
				Intents []string `json:"intents"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.Data.Intents) != 4 {
			t.Errorf("intents = %v", body.Data.Intents)
		}
	})

	t.Run("not ready without credentials", func(t *testing.T) {
		srv := newTestServer(t, false, false)
		if w := do(srv, http.MethodGet, "/ready", "", nil); w.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestWebhookRoutes(t *testing.T) {
	srv := newTestServer(t, true, false)
	body := `{"queryResult":{"queryText":"GENESYS_NO_INPUT"},"originalDetectIntentRequest":{"payload":{"Genesys-No-Input-Count":1,"Genesys-No-Input-Limit":3}}}`

	t.Run("secret required", func(t *testing.T) {
		if w := do(srv, http.MethodPost, "/webhook/no-input", body, nil); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("no-input with secret", func(t *testing.T) {
		w := do(srv, http.MethodPost, "/webhook/no-input", body, map[string]string{middleware.HeaderWebhookSecret: "s3cret"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
		}
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Error("expected a request id header")
		}
	})

	t.Run("fulfillment unknown intent", func(t *testing.T) {
		w := do(srv, http.MethodPost, "/webhook/fulfillment", `{"queryResult":{"intent":{"displayName":"Nope"}}}`,
			map[string]string{middleware.HeaderWebhookSecret: "s3cret"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "unsupported intent: Nope") {
			t.Errorf("body = %s", w.Body.String())
		}
	})
}

func TestRecovery(t *testing.T) {
	srv := newTestServer(t, true, false)
	srv.gin.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := do(srv, http.MethodGet, "/boom", "", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "boom") {
		t.Errorf("panic value leaked: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"error_code":500`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestRun_Shutdown(t *testing.T) {
	srv := newTestServer(t, true, false)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run returned %v", err)
	}
}
