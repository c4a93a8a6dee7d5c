package usecase

import (
	"context"
	"fmt"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/model"
)

func (uc *implUseCase) handleANI(ctx context.Context, event model.IntentEvent) (string, error) {
	convID, err := conversationID(event)
	if err != nil {
		return "", err
	}

	ani, err := uc.contactCenter.GetANI(ctx, convID)
	if err != nil {
		return "", uc.upstream(ctx, fulfillment.OpGetANI, "ANI", err)
	}

	return fmt.Sprintf("Your ANI is %s.", ani), nil
}
