package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"poegate/internal/commands"
	"poegate/internal/config"
	"poegate/internal/core"
	"poegate/internal/discord"
)

// Run starts the Discord bot with the given configuration
func Run(ctx context.Context, cfg *config.Configuration) error {
	core.InitLogger(cfg.Bot.Verbose)
	defer zap.L().Sync()

	sys := NewSystem(cfg)

	// Initialize command registry
	cmdRegistry := commands.NewRegistry()
	cmdRegistry.Register(&commands.AskPoeCommand{})
	cmdRegistry.Register(&commands.LLMListCommand{})
	cmdRegistry.Register(&commands.LLMSetCommand{})
	cmdRegistry.Register(&commands.ResetCommand{})
	cmdRegistry.Register(&commands.ClearCommand{})
	cmdRegistry.Register(&commands.InfoCommand{})
	cmdRegistry.Register(commands.NewHelpCommand(cmdRegistry))
	cmdRegistry.Register(commands.NewReloadCommand(cmdRegistry))

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		zap.S().Infof("Logged in as %s (ID: %s)", r.User.Username, r.User.ID)

		synced, err := s.ApplicationCommandBulkOverwrite(r.User.ID, cfg.Discord.GuildID, cmdRegistry.ApplicationCommands())
		if err != nil {
			zap.S().Errorw("Error syncing commands", "guild", cfg.Discord.GuildID, "error", err)
			return
		}
		zap.S().Infof("Successfully synced %d command(s) to guild %s", len(synced), cfg.Discord.GuildID)
	})

	// discordgo runs each handler on its own goroutine, so dispatching
	// synchronously here never stalls the gateway read loop
	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}

		ictx, cancel := discord.NewInteractionContext(ctx, cfg, sys, s, i)
		defer cancel()

		ictx.GetLogger().Infof(">> /%s", ictx.GetCommand())
		if !cmdRegistry.Dispatch(ictx) {
			ictx.GetLogger().Warnw("Unknown command", "command", ictx.GetCommand())
		}
	})

	zap.S().Infow("Connecting to discord gateway", "guild", cfg.Discord.GuildID)
	if err := dg.Open(); err != nil {
		return fmt.Errorf("opening discord connection: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	zap.S().Info("Discord client closed")
	return nil
}
