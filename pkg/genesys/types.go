package genesys

import "fmt"

// AnalyticsConversation is the analytics conversation detail record.
type AnalyticsConversation struct {
	ConversationID string                 `json:"conversationId"`
	Participants   []AnalyticsParticipant `json:"participants"`
}

// AnalyticsParticipant is a participant inside an analytics conversation record.
type AnalyticsParticipant struct {
	ParticipantID   string             `json:"participantId"`
	ParticipantName string             `json:"participantName"`
	Purpose         string             `json:"purpose"`
	Sessions        []AnalyticsSession `json:"sessions"`
}

// AnalyticsSession carries the media session details, including the caller's ANI.
type AnalyticsSession struct {
	SessionID string `json:"sessionId"`
	MediaType string `json:"mediaType"`
	ANI       string `json:"ani"`
	DNIS      string `json:"dnis"`
}

// Conversation is the live conversation object.
type Conversation struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Participants []Participant `json:"participants"`
}

// Participant is a conversation participant.
type Participant struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Purpose         string            `json:"purpose"`
	ParticipantType string            `json:"participantType"`
	Attributes      map[string]string `json:"attributes"`
}

// ParticipantAttributes is the body of the participant attributes PATCH call and its response.
type ParticipantAttributes struct {
	Attributes map[string]string `json:"attributes"`
}

// User is a Genesys Cloud user.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	State    string `json:"state"`
	Username string `json:"username"`
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genesys API error %d: %s", e.StatusCode, e.Body)
}
