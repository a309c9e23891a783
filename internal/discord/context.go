package discord

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"poegate/internal/config"
	"poegate/internal/core"
)

// InteractionContextInterface provides all context needed for handling slash commands
type InteractionContextInterface interface {
	context.Context

	// Event methods
	GetCommand() string
	GetGuildID() string
	GetSource() string
	GetSourceID() string
	GetStringOption(string) string
	IsAdmin() bool

	// Responder methods
	Ack(string)
	FollowUp(string)

	// Controller methods
	SyncCommands([]*discordgo.ApplicationCommand) (int, error)

	// Runtime methods
	GetConfig() *config.Configuration
	GetSystem() core.System
	GetLogger() *zap.SugaredLogger
}

type InteractionContext struct {
	context.Context
	Sys         core.System
	Config      *config.Configuration
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate
	logger      *zap.SugaredLogger
	requestID   string
}

var _ InteractionContextInterface = (*InteractionContext)(nil)

func NewInteractionContext(parentctx context.Context, config *config.Configuration, system core.System, session *discordgo.Session, i *discordgo.InteractionCreate) (InteractionContextInterface, context.CancelFunc) {
	timedctx, cancel := context.WithTimeout(parentctx, config.Poe.Timeout)

	// Generate a unique request ID for correlation
	requestID := generateRequestID()

	ctx := InteractionContext{
		Context:     timedctx,
		Config:      config,
		Sys:         system,
		session:     session,
		interaction: i,
		requestID:   requestID,
	}
	ctx.logger = zap.S().With(
		"request_id", requestID,
		"guild", i.GuildID,
		"command", ctx.GetCommand(),
		"source", ctx.GetSource(),
	)
	return ctx, cancel
}

func (c InteractionContext) GetSystem() core.System {
	return c.Sys
}

func (c InteractionContext) GetConfig() *config.Configuration {
	return c.Config
}

func (c InteractionContext) GetLogger() *zap.SugaredLogger {
	return c.logger
}

func (c InteractionContext) GetCommand() string {
	return c.interaction.ApplicationCommandData().Name
}

func (c InteractionContext) GetGuildID() string {
	return c.interaction.GuildID
}

// GetSource returns the invoking user's display name, preferring the
// guild nickname over the global name over the account name.
func (c InteractionContext) GetSource() string {
	if m := c.interaction.Member; m != nil {
		if m.Nick != "" {
			return m.Nick
		}
		if m.User != nil {
			if m.User.GlobalName != "" {
				return m.User.GlobalName
			}
			return m.User.Username
		}
	}
	if u := c.interaction.User; u != nil {
		if u.GlobalName != "" {
			return u.GlobalName
		}
		return u.Username
	}
	return ""
}

func (c InteractionContext) GetSourceID() string {
	if m := c.interaction.Member; m != nil && m.User != nil {
		return m.User.ID
	}
	if u := c.interaction.User; u != nil {
		return u.ID
	}
	return ""
}

func (c InteractionContext) GetStringOption(name string) string {
	for _, opt := range c.interaction.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func (c InteractionContext) IsAdmin() bool {
	id := c.GetSourceID()
	// XXX: if no admins are configured, all users are admins
	if len(c.Config.Bot.Admins) == 0 {
		c.logger.Debug("All users are admin; please configure admins")
		return true
	}
	for _, user := range c.Config.Bot.Admins {
		if user == id {
			c.logger.Debugw("User is admin", "user", id)
			return true
		}
	}
	return false
}

// Ack sends the initial interaction response, visible only to the
// invoking user. Discord requires it within seconds of the interaction.
func (c InteractionContext) Ack(message string) {
	err := c.session.InteractionRespond(c.interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		c.logger.Errorw("Failed to respond to interaction", "error", err)
	}
}

// FollowUp sends a channel-visible message after the initial response.
func (c InteractionContext) FollowUp(message string) {
	_, err := c.session.FollowupMessageCreate(c.interaction.Interaction, true, &discordgo.WebhookParams{
		Content: message,
	})
	if err != nil {
		c.logger.Errorw("Failed to send followup", "error", err)
	}
}

// SyncCommands overwrites the guild's registered slash commands and
// returns how many were synced.
func (c InteractionContext) SyncCommands(commands []*discordgo.ApplicationCommand) (int, error) {
	synced, err := c.session.ApplicationCommandBulkOverwrite(c.session.State.User.ID, c.Config.Discord.GuildID, commands)
	if err != nil {
		return 0, err
	}
	return len(synced), nil
}

// generateRequestID creates a unique 8-character request ID for correlation
func generateRequestID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
