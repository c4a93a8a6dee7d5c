package genesys

import (
	"context"
	"fmt"
	"time"

	"github.com/mypurecloud/platform-client-sdk-go/v150/platformclientv2"
)

// DefaultTimeout bounds the token request when no HTTP client is supplied.
const DefaultTimeout = 15 * time.Second

// Client wraps the Genesys Cloud Platform API v2 SDK.
// Each call obtains a credential from the Session first and invalidates it when the call fails.
type Client struct {
	apiURL  string
	session *Session
}

// NewClient creates a new Genesys Cloud client for the given API base URL.
func NewClient(apiURL string, session *Session) *Client {
	return &Client{
		apiURL:  apiURL,
		session: session,
	}
}

// SetAPIURL overrides the API base URL for testing purposes.
func (c *Client) SetAPIURL(apiURL string) {
	c.apiURL = apiURL
}

// GetConversationDetails fetches GET /api/v2/analytics/conversations/{id}/details.
//
// Required permission: analytics:conversationDetail:view
func (c *Client) GetConversationDetails(ctx context.Context, conversationID string) (*AnalyticsConversation, error) {
	var out *AnalyticsConversation
	err := c.call(ctx, func(cfg *platformclientv2.Configuration) (*platformclientv2.APIResponse, error) {
		details, resp, err := platformclientv2.NewConversationsApiWithConfig(cfg).GetAnalyticsConversationDetails(conversationID)
		if err == nil && details != nil {
			out = &AnalyticsConversation{ConversationID: deref(details.ConversationId)}
			for _, p := range derefSlice(details.Participants) {
				participant := AnalyticsParticipant{
					ParticipantID:   deref(p.ParticipantId),
					ParticipantName: deref(p.ParticipantName),
					Purpose:         deref(p.Purpose),
				}
				for _, s := range derefSlice(p.Sessions) {
					participant.Sessions = append(participant.Sessions, AnalyticsSession{
						SessionID: deref(s.SessionId),
						MediaType: deref(s.MediaType),
						ANI:       deref(s.Ani),
						DNIS:      deref(s.Dnis),
					})
				}
				out.Participants = append(out.Participants, participant)
			}
		}
		return resp, err
	})
	if err != nil {
		return nil, fmt.Errorf("get conversation details: %w", err)
	}
	return out, nil
}

// GetConversation fetches GET /api/v2/conversations/{id}.
//
// Required permission: conversation:communication:view
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*Conversation, error) {
	var out *Conversation
	err := c.call(ctx, func(cfg *platformclientv2.Configuration) (*platformclientv2.APIResponse, error) {
		conv, resp, err := platformclientv2.NewConversationsApiWithConfig(cfg).GetConversation(conversationID)
		if err == nil && conv != nil {
			out = &Conversation{ID: deref(conv.Id), Name: deref(conv.Name)}
			for _, p := range derefSlice(conv.Participants) {
				out.Participants = append(out.Participants, Participant{
					ID:              deref(p.Id),
					Name:            deref(p.Name),
					Purpose:         deref(p.Purpose),
					ParticipantType: deref(p.ParticipantType),
					Attributes:      derefMap(p.Attributes),
				})
			}
		}
		return resp, err
	})
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return out, nil
}

// PatchParticipantAttributes writes attributes through
// PATCH /api/v2/conversations/{id}/participants/{participantId}/attributes and returns the
// attributes echoed back by the platform.
func (c *Client) PatchParticipantAttributes(ctx context.Context, conversationID, participantID string, attributes map[string]string) (*ParticipantAttributes, error) {
	var out *ParticipantAttributes
	err := c.call(ctx, func(cfg *platformclientv2.Configuration) (*platformclientv2.APIResponse, error) {
		body := platformclientv2.Participantattributes{Attributes: &attributes}
		echoed, resp, err := platformclientv2.NewConversationsApiWithConfig(cfg).
			PatchConversationParticipantAttributes(conversationID, participantID, body)
		if err == nil {
			out = &ParticipantAttributes{}
			if echoed != nil {
				out.Attributes = derefMap(echoed.Attributes)
			}
		}
		return resp, err
	})
	if err != nil {
		return nil, fmt.Errorf("patch participant attributes: %w", err)
	}
	return out, nil
}

// GetUser fetches GET /api/v2/users/{id}. No permission is required.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var out *User
	err := c.call(ctx, func(cfg *platformclientv2.Configuration) (*platformclientv2.APIResponse, error) {
		user, resp, err := platformclientv2.NewUsersApiWithConfig(cfg).GetUser(userID, nil, "", "")
		if err == nil && user != nil {
			out = &User{
				ID:       deref(user.Id),
				Name:     deref(user.Name),
				Email:    deref(user.Email),
				State:    deref(user.State),
				Username: deref(user.Username),
			}
		}
		return resp, err
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return out, nil
}

// call runs one authenticated SDK request on a configuration of its own, so concurrent calls never
// share an access token field. Any failure, including a failed grant, clears the session cache.
func (c *Client) call(ctx context.Context, fn func(cfg *platformclientv2.Configuration) (*platformclientv2.APIResponse, error)) (err error) {
	defer func() {
		if err != nil {
			c.session.Invalidate()
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	token, err := c.session.Credential(ctx)
	if err != nil {
		return err
	}

	cfg := platformclientv2.NewConfiguration()
	cfg.BasePath = c.apiURL
	cfg.AccessToken = token.AccessToken

	resp, err := fn(cfg)
	if resp != nil && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return &APIError{StatusCode: resp.StatusCode, Body: resp.ErrorMessage}
	}
	if err != nil {
		return fmt.Errorf("failed to call genesys API: %w", err)
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func derefSlice[T any](p *[]T) []T {
	if p == nil {
		return nil
	}
	return *p
}

func derefMap(p *map[string]string) map[string]string {
	if p == nil {
		return nil
	}
	return *p
}
