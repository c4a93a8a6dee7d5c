package usecase

import (
	"context"
	"maps"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/fulfillment/repository"
	"dialogflow-fulfillment/internal/model"
)

const (
	msgParticipantsSucceeded  = "Reading writing participant information went successful."
	msgParticipantsFailed     = "Reading writing participant information failed."
	entityInternalParticipant = "internal type participant"
)

// handleParticipants writes attributes on the first internal participant and reports whether the
// platform echoed back exactly what was written. A mismatch is a normal outcome.
func (uc *implUseCase) handleParticipants(ctx context.Context, event model.IntentEvent) (string, error) {
	convID, err := conversationID(event)
	if err != nil {
		return "", err
	}

	participants, err := uc.contactCenter.ListParticipants(ctx, convID)
	if err != nil {
		return "", uc.upstream(ctx, fulfillment.OpGetParticipants, entityInternalParticipant, err)
	}

	internal, ok := firstInternal(participants)
	if !ok {
		return "", &fulfillment.NotFoundError{Entity: entityInternalParticipant}
	}

	written := uc.attributes(event, internal)
	echoed, err := uc.contactCenter.UpdateParticipantAttributes(ctx, repository.UpdateAttributesOptions{
		ConversationID: convID,
		ParticipantID:  internal.ID,
		Attributes:     written,
	})
	if err != nil {
		return "", uc.upstream(ctx, fulfillment.OpPatchAttributes, entityInternalParticipant, err)
	}

	if !maps.Equal(echoed, written) {
		uc.l.Infof(ctx, "usecase.fulfillment.participants: echoed attributes %v differ from written %v", echoed, written)
		return msgParticipantsFailed, nil
	}
	return msgParticipantsSucceeded, nil
}

func firstInternal(participants []model.Participant) (model.Participant, bool) {
	for _, p := range participants {
		if p.Type == fulfillment.ParticipantTypeInternal {
			return p, true
		}
	}
	return model.Participant{}, false
}
