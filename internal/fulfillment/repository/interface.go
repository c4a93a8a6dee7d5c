package repository

import (
	"context"

	"dialogflow-fulfillment/internal/model"
)

// ContactCenterRepository is the interface for contact-center data access.
type ContactCenterRepository interface {
	// GetANI returns the caller's ANI for a conversation.
	GetANI(ctx context.Context, conversationID string) (string, error)

	// ListParticipants returns the participants of a live conversation, in platform order.
	ListParticipants(ctx context.Context, conversationID string) ([]model.Participant, error)

	// UpdateParticipantAttributes writes attributes and returns the attributes the platform echoed back.
	UpdateParticipantAttributes(ctx context.Context, opt UpdateAttributesOptions) (map[string]string, error)

	// GetUserName returns a user's display name.
	GetUserName(ctx context.Context, userID string) (string, error)

	// Configured reports whether credentials were supplied.
	Configured() bool
}

// WeatherRepository is the interface for weather lookups.
type WeatherRepository interface {
	// DescribeByZip returns the current weather description for a zip code.
	DescribeByZip(ctx context.Context, zip string) (string, error)
}
