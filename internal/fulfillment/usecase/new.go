package usecase

import (
	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/fulfillment/repository"
	"dialogflow-fulfillment/internal/router"
	pkgLog "dialogflow-fulfillment/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	contactCenter repository.ContactCenterRepository
	weather       repository.WeatherRepository
	attributes    fulfillment.AttributeWriter
	router        *router.IntentRouter
}

// New creates a new fulfillment UseCase instance with its intent dispatch table.
// A nil attributes writer falls back to fulfillment.DefaultAttributes.
func New(
	l pkgLog.Logger,
	contactCenter repository.ContactCenterRepository,
	weather repository.WeatherRepository,
	attributes fulfillment.AttributeWriter,
) (*implUseCase, error) {
	if attributes == nil {
		attributes = fulfillment.DefaultAttributes
	}

	uc := &implUseCase{
		l:             l,
		contactCenter: contactCenter,
		weather:       weather,
		attributes:    attributes,
	}

	r, err := router.New(l,
		router.Route{Intent: fulfillment.IntentANI, Handler: uc.handleANI},
		router.Route{Intent: fulfillment.IntentParticipants, Handler: uc.handleParticipants},
		router.Route{Intent: fulfillment.IntentWeather, Handler: uc.handleWeather},
		router.Route{Intent: fulfillment.IntentMemberInfo, Handler: uc.handleMemberInfo},
	)
	if err != nil {
		return nil, err
	}
	uc.router = r

	return uc, nil
}
