package usecase_test

import (
	"context"

	"dialogflow-fulfillment/internal/fulfillment/repository"
	"dialogflow-fulfillment/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockContactCenter records every call so tests can assert which upstream was touched.
type mockContactCenter struct {
	calls []string

	ani          string
	aniErr       error
	participants []model.Participant
	listErr      error
	echo         func(opt repository.UpdateAttributesOptions) map[string]string
	updateErr    error
	lastUpdate   repository.UpdateAttributesOptions
	userName     string
	userErr      error
}

func (m *mockContactCenter) GetANI(ctx context.Context, conversationID string) (string, error) {
	m.calls = append(m.calls, "GetANI:"+conversationID)
	return m.ani, m.aniErr
}

func (m *mockContactCenter) ListParticipants(ctx context.Context, conversationID string) ([]model.Participant, error) {
	m.calls = append(m.calls, "ListParticipants:"+conversationID)
	return m.participants, m.listErr
}

func (m *mockContactCenter) UpdateParticipantAttributes(ctx context.Context, opt repository.UpdateAttributesOptions) (map[string]string, error) {
	m.calls = append(m.calls, "UpdateParticipantAttributes:"+opt.ParticipantID)
	m.lastUpdate = opt
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.echo != nil {
		return m.echo(opt), nil
	}
	return opt.Attributes, nil
}

func (m *mockContactCenter) GetUserName(ctx context.Context, userID string) (string, error) {
	m.calls = append(m.calls, "GetUserName:"+userID)
	return m.userName, m.userErr
}

func (m *mockContactCenter) Configured() bool { return true }

type mockWeather struct {
	calls []string
	desc  string
	err   error
}

func (m *mockWeather) DescribeByZip(ctx context.Context, zip string) (string, error) {
	m.calls = append(m.calls, zip)
	return m.desc, m.err
}

func eventWithConversation(intent, convID string) model.IntentEvent {
	return model.IntentEvent{
		IntentName: intent,
		Payload:    map[string]any{model.PayloadConversationID: convID},
	}
}
