package genesys

import (
	"context"
	"fmt"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/fulfillment/repository"
	"dialogflow-fulfillment/internal/model"
	pkgGenesys "dialogflow-fulfillment/pkg/genesys"
	pkgLog "dialogflow-fulfillment/pkg/log"
)

type implRepository struct {
	client     *pkgGenesys.Client
	configured bool
	l          pkgLog.Logger
}

// New creates a new Genesys Cloud contact-center repository.
func New(client *pkgGenesys.Client, configured bool, l pkgLog.Logger) repository.ContactCenterRepository {
	return &implRepository{
		client:     client,
		configured: configured,
		l:          l,
	}
}

func (r *implRepository) Configured() bool {
	return r.configured
}

func (r *implRepository) GetANI(ctx context.Context, conversationID string) (string, error) {
	details, err := r.client.GetConversationDetails(ctx, conversationID)
	if err != nil {
		r.l.Errorf(ctx, "genesys repository: failed to get conversation details %s: %v", conversationID, err)
		return "", err
	}

	if len(details.Participants) == 0 || len(details.Participants[0].Sessions) == 0 {
		return "", fmt.Errorf("ani for conversation %s: %w", conversationID, fulfillment.ErrNotFound)
	}
	return details.Participants[0].Sessions[0].ANI, nil
}

func (r *implRepository) ListParticipants(ctx context.Context, conversationID string) ([]model.Participant, error) {
	conv, err := r.client.GetConversation(ctx, conversationID)
	if err != nil {
		r.l.Errorf(ctx, "genesys repository: failed to get conversation %s: %v", conversationID, err)
		return nil, err
	}

	participants := make([]model.Participant, 0, len(conv.Participants))
	for _, p := range conv.Participants {
		participants = append(participants, model.Participant{
			ID:         p.ID,
			Name:       p.Name,
			Purpose:    p.Purpose,
			Type:       p.ParticipantType,
			Attributes: p.Attributes,
		})
	}
	return participants, nil
}

func (r *implRepository) UpdateParticipantAttributes(ctx context.Context, opt repository.UpdateAttributesOptions) (map[string]string, error) {
	out, err := r.client.PatchParticipantAttributes(ctx, opt.ConversationID, opt.ParticipantID, opt.Attributes)
	if err != nil {
		r.l.Errorf(ctx, "genesys repository: failed to patch attributes of participant %s: %v", opt.ParticipantID, err)
		return nil, err
	}
	return out.Attributes, nil
}

func (r *implRepository) GetUserName(ctx context.Context, userID string) (string, error) {
	user, err := r.client.GetUser(ctx, userID)
	if err != nil {
		r.l.Errorf(ctx, "genesys repository: failed to get user %s: %v", userID, err)
		return "", err
	}
	if user.Name == "" {
		return "", fmt.Errorf("name of user %s: %w", userID, fulfillment.ErrNotFound)
	}
	return user.Name, nil
}
