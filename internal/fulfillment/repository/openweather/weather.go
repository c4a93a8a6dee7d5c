package openweather

import (
	"context"
	"fmt"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/fulfillment/repository"
	pkgLog "dialogflow-fulfillment/pkg/log"
	pkgOpenWeather "dialogflow-fulfillment/pkg/openweather"
)

type implRepository struct {
	client *pkgOpenWeather.Client
	l      pkgLog.Logger
}

// New creates a new OpenWeatherMap repository.
func New(client *pkgOpenWeather.Client, l pkgLog.Logger) repository.WeatherRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) DescribeByZip(ctx context.Context, zip string) (string, error) {
	current, err := r.client.CurrentByZip(ctx, zip)
	if err != nil {
		r.l.Errorf(ctx, "openweather repository: lookup for zip %s failed: %v", zip, err)
		return "", err
	}

	desc := current.Description()
	if desc == "" {
		return "", fmt.Errorf("weather for zip %s: %w", zip, fulfillment.ErrNotFound)
	}
	return desc, nil
}
