package commands

import (
	"github.com/bwmarrin/discordgo"

	"poegate/internal/discord"
)

// ReloadCommand re-registers the guild's slash commands on demand
type ReloadCommand struct {
	registry *Registry
}

// NewReloadCommand creates a reload command backed by the registry
func NewReloadCommand(registry *Registry) *ReloadCommand {
	return &ReloadCommand{registry: registry}
}

func (c *ReloadCommand) Name() string        { return "reload" }
func (c *ReloadCommand) Description() string { return "Reload the bot's commands (Developer Only)." }
func (c *ReloadCommand) AdminOnly() bool     { return true }

func (c *ReloadCommand) Options() []*discordgo.ApplicationCommandOption { return nil }

func (c *ReloadCommand) Execute(ctx discord.InteractionContextInterface) {
	synced, err := ctx.SyncCommands(c.registry.ApplicationCommands())
	if err != nil {
		ctx.GetLogger().Errorw("Error reloading commands", "error", err)
		ctx.Ack("❌ Failed to reload commands.")
		return
	}
	ctx.Ack("✅ Bot commands reloaded successfully.")
	ctx.GetLogger().Infow("Commands reloaded", "synced", synced)
}
