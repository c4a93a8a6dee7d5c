package usecase

import (
	"context"
	"fmt"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/model"
)

func (uc *implUseCase) handleWeather(ctx context.Context, event model.IntentEvent) (string, error) {
	zip := event.Param(fulfillment.ParamZipCode)
	if zip == "" {
		return "", &fulfillment.MissingInputError{Field: "zip code"}
	}

	desc, err := uc.weather.DescribeByZip(ctx, zip)
	if err != nil {
		return "", uc.upstream(ctx, fulfillment.OpGetWeather, "weather", err)
	}

	return fmt.Sprintf("Today's weather is %s", desc), nil
}
