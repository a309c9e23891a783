package commands

import (
	"github.com/bwmarrin/discordgo"

	"poegate/internal/discord"
)

// ClearCommand handles the /clear command
type ClearCommand struct{}

func (c *ClearCommand) Name() string        { return "clear" }
func (c *ClearCommand) Description() string { return "Clear the conversation context." }
func (c *ClearCommand) AdminOnly() bool     { return false }

func (c *ClearCommand) Options() []*discordgo.ApplicationCommandOption { return nil }

func (c *ClearCommand) Execute(ctx discord.InteractionContextInterface) {
	ctx.GetLogger().Infow("Clear requested")
	ctx.Ack("🧹 Clearing the conversation context...")

	guildID := ctx.GetGuildID()
	sys := ctx.GetSystem()
	rec, ok := sys.GetStore().Lookup(guildID)
	if !ok {
		ctx.GetLogger().Warnw("No conversation context found", "guild", guildID)
		ctx.FollowUp("❌ No conversation context found to clear.")
		return
	}
	if rec.ChatID == nil {
		ctx.GetLogger().Warnw("No active chat thread", "guild", guildID)
		ctx.FollowUp("❌ No active conversation thread to clear.")
		return
	}

	// Tell the provider to forget the thread before dropping it locally
	if err := sys.GetPoe().ChatBreak(ctx, rec.Model, *rec.ChatID); err != nil {
		ctx.GetLogger().Errorw("Error clearing conversation context", "error", err)
		ctx.FollowUp("❌ Sorry, there was an error clearing the conversation context. Please try again later.")
		return
	}

	sys.GetStore().ClearChat(guildID)
	if err := sys.GetStore().Persist(); err != nil {
		ctx.GetLogger().Errorw("Error clearing conversation context", "error", err)
		ctx.FollowUp("❌ Sorry, there was an error clearing the conversation context. Please try again later.")
		return
	}
	ctx.FollowUp("✅ The conversation context has been cleared.")
	ctx.GetLogger().Infow("Cleared conversation context", "guild", guildID)
}
