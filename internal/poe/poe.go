package poe

import (
	"context"
)

// Client is the boundary to the Poe conversational API. One implementation
// speaks HTTP; tests script their own.
type Client interface {
	// GetAvailableBots lists the model handles the account can talk to.
	GetAvailableBots(ctx context.Context) ([]string, error)

	// GetSettings fetches account-level message quota and subscription info.
	GetSettings(ctx context.Context) (*Settings, error)

	// GetBotInfo fetches metadata for one model handle.
	GetBotInfo(ctx context.Context, handle string) (*BotInfo, error)

	// SendMessage streams the model's reply. A nil chatID starts a fresh
	// conversation; the stream carries the thread id the provider assigned.
	// The channel closes when the reply is complete; a terminal failure
	// arrives in-band as a chunk with Err set.
	SendMessage(ctx context.Context, handle, message string, chatID *string) <-chan MessageChunk

	// ChatBreak tells the provider to forget the thread's context.
	ChatBreak(ctx context.Context, handle, chatID string) error
}

// MessageChunk is one fragment of a streamed reply. Text holds the delta,
// ChatID the provider-assigned thread when one is (newly) open.
type MessageChunk struct {
	Text   string `json:"response"`
	ChatID string `json:"chatId"`
	Err    error  `json:"-"`
}

type Settings struct {
	NumRemainingMessages int    `json:"numRemainingMessages"`
	SubscriptionTier     string `json:"subscriptionTier"`
}

type BotInfo struct {
	Handle                   string `json:"handle"`
	Model                    string `json:"model"`
	SupportsFileUpload       bool   `json:"supportsFileUpload"`
	MessageTimeoutSecs       int    `json:"messageTimeoutSecs"`
	DisplayMessagePointPrice int    `json:"displayMessagePointPrice"`
	NumRemainingMessages     int    `json:"numRemainingMessages"`
	ViewerIsCreator          bool   `json:"viewerIsCreator"`
	ID                       string `json:"id"`
}
