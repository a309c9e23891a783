package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"poegate/internal/discord"
)

// LLMSetCommand handles the /llm-set command
type LLMSetCommand struct{}

func (c *LLMSetCommand) Name() string        { return "llm-set" }
func (c *LLMSetCommand) Description() string { return "Set your preferred LLM model." }
func (c *LLMSetCommand) AdminOnly() bool     { return false }

func (c *LLMSetCommand) Options() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "model",
			Description: "Model name",
			Required:    true,
		},
	}
}

func (c *LLMSetCommand) Execute(ctx discord.InteractionContextInterface) {
	model := ctx.GetStringOption("model")
	ctx.GetLogger().Infow("LLM set requested", "model", model)
	ctx.Ack("⚙️ Setting your preferred LLM model...")

	models, err := ctx.GetSystem().GetPoe().GetAvailableBots(ctx)
	if err != nil {
		ctx.GetLogger().Errorw("Error setting LLM model", "error", err)
		ctx.FollowUp("❌ Sorry, there was an error setting your preferred model. Please try again later.")
		return
	}

	valid := false
	for _, m := range models {
		if m == model {
			valid = true
			break
		}
	}
	if !valid {
		ctx.GetLogger().Warnw("Invalid model attempted", "model", model)
		ctx.FollowUp(fmt.Sprintf("❌ `%s` is not a valid model. Use `/llm-list` to see all available models.", model))
		return
	}

	// Selecting a model drops any open chat thread
	guildID := ctx.GetGuildID()
	store := ctx.GetSystem().GetStore()
	store.SetModel(guildID, model)
	if err := store.Persist(); err != nil {
		ctx.GetLogger().Errorw("Error setting LLM model", "error", err)
		ctx.FollowUp("❌ Sorry, there was an error setting your preferred model. Please try again later.")
		return
	}
	ctx.FollowUp(fmt.Sprintf("✅ Your preferred LLM model has been set to `%s`.", model))
	ctx.GetLogger().Infow("Set model", "guild", guildID, "model", model)
}
