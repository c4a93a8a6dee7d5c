package openweather

import "fmt"

// CurrentWeather is the subset of the current weather response the bridge reads.
type CurrentWeather struct {
	Name       string      `json:"name"`
	Conditions []Condition `json:"weather"`
	Main       struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
}

// Condition is one entry of the "weather" array.
type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Description returns the first condition's description, or "" when there is none.
func (w *CurrentWeather) Description() string {
	if w == nil || len(w.Conditions) == 0 {
		return ""
	}
	return w.Conditions[0].Description
}

// APIError is returned for non-200 responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openweather API error %d: %s", e.StatusCode, e.Message)
}
