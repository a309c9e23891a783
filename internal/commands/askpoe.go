package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"poegate/internal/core"
	"poegate/internal/discord"
)

// AskPoeCommand handles the /askpoe command
type AskPoeCommand struct{}

func (c *AskPoeCommand) Name() string        { return "askpoe" }
func (c *AskPoeCommand) Description() string { return "Send a prompt to Poe.com and receive a reply." }
func (c *AskPoeCommand) AdminOnly() bool     { return false }

func (c *AskPoeCommand) Options() []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "prompt",
			Description: "Your prompt",
			Required:    true,
		},
	}
}

func (c *AskPoeCommand) Execute(ctx discord.InteractionContextInterface) {
	prompt := ctx.GetStringOption("prompt")
	ctx.GetLogger().Infow("Received prompt", "prompt", prompt)
	ctx.Ack("⚙️ Processing your request...")

	// One in-flight generation per guild keeps the provider-side chat
	// thread consistent
	guildID := ctx.GetGuildID()
	core.WithRequestLock(ctx, guildID, "askpoe", func() {
		c.ask(ctx, guildID, prompt)
	}, func() {
		ctx.FollowUp("❌ Another request is still in progress. Please try again shortly.")
	})
}

func (c *AskPoeCommand) ask(ctx discord.InteractionContextInterface, guildID, prompt string) {
	sys := ctx.GetSystem()
	rec := sys.GetStore().Get(guildID)

	var reply string
	var chatID string
	for chunk := range sys.GetPoe().SendMessage(ctx, rec.Model, prompt, rec.ChatID) {
		if chunk.Err != nil {
			ctx.GetLogger().Errorw("Error processing request", "error", chunk.Err)
			ctx.FollowUp("❌ Sorry, there was an error processing your request. Please try again later.")
			return
		}
		reply += chunk.Text
		if chunk.ChatID != "" {
			chatID = chunk.ChatID
		}
	}

	if reply == "" {
		ctx.GetLogger().Warnw("No response generated")
		ctx.FollowUp("❌ Sorry, I could not generate a response.")
		return
	}

	// Bind the provider's chat thread to the guild so the next prompt
	// continues the conversation
	if chatID != "" {
		if sys.GetStore().SetChatID(guildID, chatID) {
			if err := sys.GetStore().Persist(); err != nil {
				ctx.GetLogger().Errorw("Error processing request", "error", err)
				ctx.FollowUp("❌ Sorry, there was an error processing your request. Please try again later.")
				return
			}
		}
	}

	prefix := fmt.Sprintf("**%s:** %s\n**%s:** ", ctx.GetSource(), prompt, rec.Model)
	segments, err := discord.Split(prefix, reply, discord.MessageLimit)
	if err != nil {
		ctx.GetLogger().Warnw("Prefix exceeds message limit", "error", err)
		ctx.FollowUp("❌ The combined prompt and reply are too long to display.")
		return
	}
	for _, segment := range segments {
		ctx.FollowUp(segment)
	}
	ctx.GetLogger().Infow("Sent response", "segments", len(segments))
}
