package commands

import (
	"github.com/bwmarrin/discordgo"

	"poegate/internal/discord"
)

// ResetCommand handles the /reset command
type ResetCommand struct{}

func (c *ResetCommand) Name() string        { return "reset" }
func (c *ResetCommand) Description() string { return "Reset the conversation thread." }
func (c *ResetCommand) AdminOnly() bool     { return false }

func (c *ResetCommand) Options() []*discordgo.ApplicationCommandOption { return nil }

func (c *ResetCommand) Execute(ctx discord.InteractionContextInterface) {
	ctx.GetLogger().Infow("Reset requested")
	ctx.Ack("🧹 Resetting the conversation thread...")

	guildID := ctx.GetGuildID()
	store := ctx.GetSystem().GetStore()
	if !store.ClearChat(guildID) {
		ctx.GetLogger().Warnw("Guild not found", "guild", guildID)
		ctx.FollowUp("❌ Guild not found.")
		return
	}
	if err := store.Persist(); err != nil {
		ctx.GetLogger().Errorw("Error resetting conversation thread", "error", err)
		ctx.FollowUp("❌ Sorry, there was an error resetting the conversation. Please try again later.")
		return
	}
	ctx.FollowUp("✅ The conversation has been reset. The next prompt will start a new conversation.")
	ctx.GetLogger().Infow("Conversation thread reset", "guild", guildID)
}
