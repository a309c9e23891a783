package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"poegate/internal/discord"
)

// InfoCommand handles the /info command
type InfoCommand struct{}

func (c *InfoCommand) Name() string { return "info" }
func (c *InfoCommand) Description() string {
	return "Display Poe API settings and current model information."
}
func (c *InfoCommand) AdminOnly() bool { return false }

func (c *InfoCommand) Options() []*discordgo.ApplicationCommandOption { return nil }

func (c *InfoCommand) Execute(ctx discord.InteractionContextInterface) {
	ctx.GetLogger().Infow("Info requested")
	ctx.Ack("📄 Fetching Poe API settings and model information...")

	sys := ctx.GetSystem()
	settings, err := sys.GetPoe().GetSettings(ctx)
	if err != nil {
		ctx.GetLogger().Warnw("Failed to retrieve settings", "error", err)
		ctx.FollowUp("❌ Failed to retrieve Poe API settings.")
		return
	}

	rec := sys.GetStore().Get(ctx.GetGuildID())
	info, err := sys.GetPoe().GetBotInfo(ctx, rec.Model)
	if err != nil {
		ctx.GetLogger().Warnw("Failed to retrieve bot info", "model", rec.Model, "error", err)
		ctx.FollowUp("❌ Unable to retrieve current model information.")
		return
	}

	ctx.FollowUp(fmt.Sprintf(`**Poe API Settings:**
- **numRemainingMessages**: %d
- **subscriptionTier**: %s

**Current Model Information:**
- **Handle**: %s
- **Model**: %s
- **Supports File Upload**: %t
- **Message Timeout (secs)**: %d
- **Display Message Point Price**: %d
- **Number of Remaining Messages**: %d
- **Viewer is Creator**: %t
- **ID**: %s`,
		settings.NumRemainingMessages, settings.SubscriptionTier,
		info.Handle, info.Model, info.SupportsFileUpload, info.MessageTimeoutSecs,
		info.DisplayMessagePointPrice, info.NumRemainingMessages, info.ViewerIsCreator, info.ID))
	ctx.GetLogger().Infow("Sent info", "model", rec.Model)
}
