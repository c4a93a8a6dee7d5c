package usecase

import (
	"context"
	"fmt"

	"dialogflow-fulfillment/internal/fulfillment"
	"dialogflow-fulfillment/internal/model"
)

func (uc *implUseCase) handleMemberInfo(ctx context.Context, event model.IntentEvent) (string, error) {
	userID := event.Param(fulfillment.ParamUserID)
	if userID == "" {
		return "", &fulfillment.MissingInputError{Field: "user ID"}
	}

	name, err := uc.contactCenter.GetUserName(ctx, userID)
	if err != nil {
		return "", uc.upstream(ctx, fulfillment.OpGetMemberInfo, "member", err)
	}

	return fmt.Sprintf("Your name is %s.", name), nil
}
