package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dialogflow-fulfillment/internal/testutil"
)

func TestClient_CurrentByZip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("zip"); got != "10115,de" {
			t.Errorf("zip = %q, want 10115,de", got)
		}
		if got := r.URL.Query().Get("appid"); got != "key" {
			t.Errorf("appid = %q", got)
		}
		_, _ = w.Write([]byte(`{"name":"Berlin","weather":[{"id":500,"main":"Rain","description":"light rain"}]}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.Client())
	c.SetAPIURL(srv.URL)
	c.SetCountryCode("de")

	got, err := c.CurrentByZip(context.Background(), "10115")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Description() != "light rain" {
		t.Errorf("Description() = %q, want light rain", got.Description())
	}
}

func TestClient_CurrentByZip_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer srv.Close()

	c := NewClient("key", srv.Client())
	c.SetAPIURL(srv.URL)

	_, err := c.CurrentByZip(context.Background(), "00000")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "city not found" {
		t.Errorf("unexpected error %+v", apiErr)
	}
}

func TestClient_CurrentByZip_Recorded(t *testing.T) {
	r, stop := testutil.NewVCRRecorder(t, "current_weather_46074")
	defer stop()

	c := NewClient("test-app-id", testutil.VCRHTTPClient(r))

	got, err := c.CurrentByZip(context.Background(), "46074")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Description() != "clear sky" {
		t.Errorf("Description() = %q, want clear sky", got.Description())
	}
	if got.Name != "Westfield" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestCurrentWeather_Description(t *testing.T) {
	var nilWeather *CurrentWeather
	if nilWeather.Description() != "" {
		t.Error("nil weather should have empty description")
	}
	if (&CurrentWeather{}).Description() != "" {
		t.Error("empty conditions should have empty description")
	}
}
