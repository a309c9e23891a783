package commands

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"poegate/internal/discord"
)

// LLMListCommand handles the /llm-list command
type LLMListCommand struct{}

func (c *LLMListCommand) Name() string        { return "llm-list" }
func (c *LLMListCommand) Description() string { return "List all available LLM models." }
func (c *LLMListCommand) AdminOnly() bool     { return false }

func (c *LLMListCommand) Options() []*discordgo.ApplicationCommandOption { return nil }

func (c *LLMListCommand) Execute(ctx discord.InteractionContextInterface) {
	ctx.GetLogger().Infow("LLM list requested")
	ctx.Ack("🔍 Fetching available LLM models...")

	models, err := ctx.GetSystem().GetPoe().GetAvailableBots(ctx)
	if err != nil {
		ctx.GetLogger().Errorw("Error fetching available models", "error", err)
		ctx.FollowUp("❌ Sorry, there was an error fetching the models.")
		return
	}
	if len(models) == 0 {
		ctx.GetLogger().Warnw("No models found")
		ctx.FollowUp("❌ No available models found.")
		return
	}

	var b strings.Builder
	b.WriteString("**Available LLM Models:**")
	for _, model := range models {
		b.WriteString("\n- " + model)
	}
	ctx.FollowUp(b.String())
	ctx.GetLogger().Infow("Sent LLM list", "models", len(models))
}
