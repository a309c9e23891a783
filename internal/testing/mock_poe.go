package testing

import (
	"context"

	"poegate/internal/poe"
)

// MockPoe implements poe.Client with scripted results
type MockPoe struct {
	// Scripted results
	Bots        []string
	BotsErr     error
	Settings    *poe.Settings
	SettingsErr error
	Info        *poe.BotInfo
	InfoErr     error
	Chunks      []poe.MessageChunk
	BreakErr    error

	// Recorded calls (for assertions)
	SendCalls  []SendCall
	BreakCalls []BreakCall
}

// SendCall records a SendMessage() invocation
type SendCall struct {
	Handle  string
	Message string
	ChatID  *string
}

// BreakCall records a ChatBreak() invocation
type BreakCall struct {
	Handle string
	ChatID string
}

// Verify MockPoe implements poe.Client
var _ poe.Client = (*MockPoe)(nil)

// NewMockPoe creates a MockPoe with sensible defaults
func NewMockPoe() *MockPoe {
	return &MockPoe{
		Bots: []string{"claude", "gpt3_5", "gpt4"},
		Settings: &poe.Settings{
			NumRemainingMessages: 100,
			SubscriptionTier:     "free",
		},
		Info: &poe.BotInfo{
			Handle:               "gpt3_5",
			Model:                "gpt-3.5-turbo",
			MessageTimeoutSecs:   30,
			NumRemainingMessages: 100,
			ID:                   "Qm90OjEwMjQ=",
		},
		Chunks: []poe.MessageChunk{
			{Text: "Hello from mock Poe", ChatID: "chat-1"},
		},
	}
}

func (m *MockPoe) GetAvailableBots(ctx context.Context) ([]string, error) {
	return m.Bots, m.BotsErr
}

func (m *MockPoe) GetSettings(ctx context.Context) (*poe.Settings, error) {
	return m.Settings, m.SettingsErr
}

func (m *MockPoe) GetBotInfo(ctx context.Context, handle string) (*poe.BotInfo, error) {
	return m.Info, m.InfoErr
}

// SendMessage replays the scripted chunks, respecting cancellation
func (m *MockPoe) SendMessage(ctx context.Context, handle, message string, chatID *string) <-chan poe.MessageChunk {
	m.SendCalls = append(m.SendCalls, SendCall{Handle: handle, Message: message, ChatID: chatID})

	ch := make(chan poe.MessageChunk, len(m.Chunks))
	go func() {
		defer close(ch)
		for _, chunk := range m.Chunks {
			select {
			case <-ctx.Done():
				return
			case ch <- chunk:
			}
		}
	}()
	return ch
}

func (m *MockPoe) ChatBreak(ctx context.Context, handle, chatID string) error {
	m.BreakCalls = append(m.BreakCalls, BreakCall{Handle: handle, ChatID: chatID})
	return m.BreakErr
}
