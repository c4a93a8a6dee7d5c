package repository

// UpdateAttributesOptions holds the parameters for writing participant attributes.
type UpdateAttributesOptions struct {
	ConversationID string
	ParticipantID  string
	Attributes     map[string]string
}
