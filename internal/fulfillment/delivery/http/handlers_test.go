package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"dialogflow-fulfillment/internal/fulfillment"
	genesysRepo "dialogflow-fulfillment/internal/fulfillment/repository/genesys"
	weatherRepo "dialogflow-fulfillment/internal/fulfillment/repository/openweather"
	"dialogflow-fulfillment/internal/fulfillment/usecase"
	"dialogflow-fulfillment/internal/middleware"
	"dialogflow-fulfillment/internal/model"
	"dialogflow-fulfillment/pkg/genesys"
	"dialogflow-fulfillment/pkg/log"
	"dialogflow-fulfillment/pkg/openweather"
)

type stubUseCase struct {
	text  string
	err   error
	event model.IntentEvent
}

func (s *stubUseCase) Fulfill(ctx context.Context, event model.IntentEvent) (string, error) {
	s.event = event
	return s.text, s.err
}

func (s *stubUseCase) Intents() []string { return nil }

func serve(t *testing.T, h Handler, body string) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r.Group("/webhook"), h, middleware.New(log.NewNop(), middleware.SecurityConfig{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/fulfillment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", w.Body.String(), err)
	}
	return w.Code, out
}

func TestFulfill(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &stubUseCase{text: "Your ANI is 555."}
		code, out := serve(t, New(log.NewNop(), uc), `{
			"responseId":"r-1",
			"queryResult":{"intent":{"displayName":"ANI"}},
			"originalDetectIntentRequest":{"payload":{"Genesys-Conversation-Id":"conv-1"}}}`)

		if code != http.StatusOK {
			t.Errorf("status = %d", code)
		}
		if out["fulfillmentText"] != "Your ANI is 555." {
			t.Errorf("body = %v", out)
		}
		if uc.event.IntentName != "ANI" || uc.event.PayloadString(model.PayloadConversationID) != "conv-1" {
			t.Errorf("event = %+v", uc.event)
		}
	})

	t.Run("failure is embedded in a 200", func(t *testing.T) {
		uc := &stubUseCase{err: &fulfillment.MissingInputError{Field: "zip code"}}
		code, out := serve(t, New(log.NewNop(), uc), `{"queryResult":{"intent":{"displayName":"Weather"}}}`)

		if code != http.StatusOK {
			t.Errorf("status = %d", code)
		}
		if out["fulfillmentText"] != "Something went wrong while processing fulfillment. - Missing zip code" {
			t.Errorf("body = %v", out)
		}
	})

	t.Run("upstream cause is not leaked", func(t *testing.T) {
		uc := &stubUseCase{err: &fulfillment.UpstreamError{Op: fulfillment.OpGetANI, Err: errors.New("token=secret")}}
		_, out := serve(t, New(log.NewNop(), uc), `{"queryResult":{"intent":{"displayName":"ANI"}}}`)

		text, _ := out["fulfillmentText"].(string)
		if strings.Contains(text, "secret") {
			t.Errorf("cause leaked: %q", text)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		code, out := serve(t, New(log.NewNop(), &stubUseCase{}), `{not json`)

		if code != http.StatusOK {
			t.Errorf("status = %d", code)
		}
		text, _ := out["fulfillmentText"].(string)
		if !strings.HasPrefix(text, ErrorTextPrefix) {
			t.Errorf("body = %v", out)
		}
	})
}

type staticAcquirer struct{}

func (staticAcquirer) Token(ctx context.Context) (*oauth2.Token, error) {
	return &oauth2.Token{AccessToken: "t", TokenType: "Bearer"}, nil
}

func TestFulfill_WeatherEndToEnd(t *testing.T) {
	weatherSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("zip") != "46074,us" {
			t.Errorf("zip = %q", r.URL.Query().Get("zip"))
		}
		_, _ = w.Write([]byte(`{"weather":[{"id":800,"main":"Clear","description":"clear sky"}],"name":"Westfield"}`))
	}))
	defer weatherSrv.Close()

	genesysSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("genesys must not be called for Weather, got %s", r.URL.Path)
	}))
	defer genesysSrv.Close()

	wc := openweather.NewClient("app-id", weatherSrv.Client())
	wc.SetAPIURL(weatherSrv.URL)
	gc := genesys.NewClient(genesysSrv.URL, genesys.NewSessionWithAcquirer(staticAcquirer{}), genesysSrv.Client())

	uc, err := usecase.New(log.NewNop(), genesysRepo.New(gc, true, log.NewNop()), weatherRepo.New(wc, log.NewNop()), nil)
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}

	code, out := serve(t, New(log.NewNop(), uc), `{
		"responseId":"r-2",
		"queryResult":{"queryText":"weather in 46074","parameters":{"zipcode":"46074"},"intent":{"displayName":"Weather"}}}`)

	if code != http.StatusOK {
		t.Errorf("status = %d", code)
	}
	if out["fulfillmentText"] != "Today's weather is clear sky" {
		t.Errorf("body = %v", out)
	}
}
