package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultAPIURL is the OpenWeatherMap API root.
	DefaultAPIURL = "https://api.openweathermap.org"
	// DefaultCountryCode is appended to every zip code lookup.
	DefaultCountryCode = "us"
	// DefaultTimeout bounds a lookup when no client is supplied.
	DefaultTimeout = 10 * time.Second
)

// Client wraps the OpenWeatherMap current weather endpoint.
type Client struct {
	apiURL      string
	appID       string
	countryCode string
	httpClient  *http.Client
}

// NewClient creates a new OpenWeatherMap client. httpClient may be nil.
func NewClient(appID string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		apiURL:      DefaultAPIURL,
		appID:       appID,
		countryCode: DefaultCountryCode,
		httpClient:  httpClient,
	}
}

// SetAPIURL overrides the API root for testing purposes.
func (c *Client) SetAPIURL(apiURL string) {
	c.apiURL = apiURL
}

// SetCountryCode changes the country used to qualify zip codes. Empty keeps the current value.
func (c *Client) SetCountryCode(code string) {
	if code != "" {
		c.countryCode = code
	}
}

// CurrentByZip fetches the current weather for a zip code.
func (c *Client) CurrentByZip(ctx context.Context, zip string) (*CurrentWeather, error) {
	q := url.Values{}
	q.Set("zip", fmt.Sprintf("%s,%s", zip, c.countryCode))
	q.Set("appid", c.appID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call openweather API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Message
		}
		return nil, apiErr
	}

	var out CurrentWeather
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}
