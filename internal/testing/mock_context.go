package testing

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"poegate/internal/config"
	"poegate/internal/core"
	"poegate/internal/discord"
)

// MockInteractionContext implements discord.InteractionContextInterface for testing
type MockInteractionContext struct {
	context.Context

	// Configurable return values
	Admin    bool
	Command  string
	GuildID  string
	Source   string
	SourceID string
	Options  map[string]string
	SyncErr  error

	// Recorded calls (for assertions)
	Acks      []string
	FollowUps []string
	SyncCalls [][]*discordgo.ApplicationCommand

	// Injected dependencies
	cfg    *config.Configuration
	sys    core.System
	logger *zap.SugaredLogger
}

// Verify MockInteractionContext implements discord.InteractionContextInterface
var _ discord.InteractionContextInterface = (*MockInteractionContext)(nil)

// NewMockContext creates a new MockInteractionContext with sensible defaults
func NewMockContext(t testing.TB) *MockInteractionContext {
	return &MockInteractionContext{
		Context:   context.Background(),
		Admin:     false,
		GuildID:   "testguild",
		Source:    "testuser",
		SourceID:  "1000",
		Options:   make(map[string]string),
		Acks:      []string{},
		FollowUps: []string{},
		cfg:       DefaultTestConfig(),
		sys:       NewMockSystem(t),
		logger:    zap.NewNop().Sugar(),
	}
}

// Builder methods for fluent test setup

// WithContext sets a custom context (for timeout/cancellation testing)
func (m *MockInteractionContext) WithContext(ctx context.Context) *MockInteractionContext {
	m.Context = ctx
	return m
}

// WithAdmin sets the admin flag
func (m *MockInteractionContext) WithAdmin(admin bool) *MockInteractionContext {
	m.Admin = admin
	return m
}

// WithCommand sets the invoked command name
func (m *MockInteractionContext) WithCommand(command string) *MockInteractionContext {
	m.Command = command
	return m
}

// WithGuild sets the guild the interaction arrived from
func (m *MockInteractionContext) WithGuild(guildID string) *MockInteractionContext {
	m.GuildID = guildID
	return m
}

// WithSource sets the invoking user's display name
func (m *MockInteractionContext) WithSource(source string) *MockInteractionContext {
	m.Source = source
	return m
}

// WithOption sets a slash command option value
func (m *MockInteractionContext) WithOption(name, value string) *MockInteractionContext {
	m.Options[name] = value
	return m
}

// WithConfig sets the configuration
func (m *MockInteractionContext) WithConfig(cfg *config.Configuration) *MockInteractionContext {
	m.cfg = cfg
	return m
}

// WithSystem sets the system
func (m *MockInteractionContext) WithSystem(sys core.System) *MockInteractionContext {
	m.sys = sys
	return m
}

// WithLogger sets the logger
func (m *MockInteractionContext) WithLogger(logger *zap.SugaredLogger) *MockInteractionContext {
	m.logger = logger
	return m
}

// WithSyncError makes SyncCommands fail
func (m *MockInteractionContext) WithSyncError(err error) *MockInteractionContext {
	m.SyncErr = err
	return m
}

// Event methods

func (m *MockInteractionContext) GetCommand() string {
	return m.Command
}

func (m *MockInteractionContext) GetGuildID() string {
	return m.GuildID
}

func (m *MockInteractionContext) GetSource() string {
	return m.Source
}

func (m *MockInteractionContext) GetSourceID() string {
	return m.SourceID
}

func (m *MockInteractionContext) GetStringOption(name string) string {
	return m.Options[name]
}

func (m *MockInteractionContext) IsAdmin() bool {
	return m.Admin
}

// Responder methods

func (m *MockInteractionContext) Ack(msg string) {
	m.Acks = append(m.Acks, msg)
}

func (m *MockInteractionContext) FollowUp(msg string) {
	m.FollowUps = append(m.FollowUps, msg)
}

// Controller methods

func (m *MockInteractionContext) SyncCommands(commands []*discordgo.ApplicationCommand) (int, error) {
	m.SyncCalls = append(m.SyncCalls, commands)
	if m.SyncErr != nil {
		return 0, m.SyncErr
	}
	return len(commands), nil
}

// Runtime methods

func (m *MockInteractionContext) GetConfig() *config.Configuration {
	return m.cfg
}

func (m *MockInteractionContext) GetSystem() core.System {
	return m.sys
}

func (m *MockInteractionContext) GetLogger() *zap.SugaredLogger {
	return m.logger
}

// Assertion helpers

// HasAck checks if any ack contains the given substring
func (m *MockInteractionContext) HasAck(substring string) bool {
	for _, a := range m.Acks {
		if strings.Contains(a, substring) {
			return true
		}
	}
	return false
}

// HasFollowUp checks if any followup contains the given substring
func (m *MockInteractionContext) HasFollowUp(substring string) bool {
	for _, f := range m.FollowUps {
		if strings.Contains(f, substring) {
			return true
		}
	}
	return false
}

// LastFollowUp returns the last followup, or empty string if none
func (m *MockInteractionContext) LastFollowUp() string {
	if len(m.FollowUps) == 0 {
		return ""
	}
	return m.FollowUps[len(m.FollowUps)-1]
}

// FollowUpCount returns the number of followups
func (m *MockInteractionContext) FollowUpCount() int {
	return len(m.FollowUps)
}
