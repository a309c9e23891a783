package commands

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"poegate/internal/discord"
)

// HelpCommand handles the /help command
type HelpCommand struct {
	registry *Registry
}

// NewHelpCommand creates a help command that can list registered commands
func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Display available commands." }
func (c *HelpCommand) AdminOnly() bool     { return false }

func (c *HelpCommand) Options() []*discordgo.ApplicationCommandOption { return nil }

func (c *HelpCommand) Execute(ctx discord.InteractionContextInterface) {
	isAdmin := ctx.IsAdmin()

	var b strings.Builder
	b.WriteString("**PoeBot Commands:**")
	for _, cmd := range c.registry.All() {
		if cmd.AdminOnly() && !isAdmin {
			continue
		}
		b.WriteString("\n`/" + cmd.Name())
		for _, opt := range cmd.Options() {
			b.WriteString(fmt.Sprintf(" %s: <%s>", opt.Name, opt.Name))
		}
		b.WriteString("` - " + cmd.Description())
	}
	ctx.Ack(b.String())
}
