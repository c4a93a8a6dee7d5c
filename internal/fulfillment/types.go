package fulfillment

import "dialogflow-fulfillment/internal/model"

// Intent display names configured in the Dialogflow agent.
const (
	IntentANI          = "ANI"
	IntentParticipants = "Participants"
	IntentWeather      = "Weather"
	IntentMemberInfo   = "MemberInfo"
)

// Parameter names read from queryResult.parameters.
const (
	ParamZipCode = "zipcode"
	ParamUserID  = "userId"
)

// ParticipantTypeInternal marks the agent side of a conversation.
const ParticipantTypeInternal = "Internal"

// AttributeWriter decides which attributes the Participants intent writes on the internal participant.
type AttributeWriter func(event model.IntentEvent, participant model.Participant) map[string]string

// DefaultAttributes writes the demo attribute set.
func DefaultAttributes(model.IntentEvent, model.Participant) map[string]string {
	return map[string]string{
		"favoriteColor":  "Green",
		"favoriteSports": "Soccer",
	}
}
