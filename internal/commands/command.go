package commands

import (
	"sort"

	"github.com/bwmarrin/discordgo"

	"poegate/internal/discord"
)

// Command defines the interface for slash commands
type Command interface {
	Name() string
	Description() string
	Options() []*discordgo.ApplicationCommandOption
	Execute(ctx discord.InteractionContextInterface)
	AdminOnly() bool
}

// Registry manages command registration and dispatch
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Dispatch executes the command named by the interaction
// Returns true if a command was executed, false otherwise
func (r *Registry) Dispatch(ctx discord.InteractionContextInterface) bool {
	cmd, ok := r.commands[ctx.GetCommand()]
	if !ok {
		return false
	}

	// Check admin permission
	if cmd.AdminOnly() && !ctx.IsAdmin() {
		ctx.Ack("❌ You don't have permission to perform this action.")
		return true
	}

	cmd.Execute(ctx)
	return true
}

// All returns all registered commands sorted by name
func (r *Registry) All() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// ApplicationCommands renders the registry as Discord application command
// definitions, ready for guild registration.
func (r *Registry) ApplicationCommands() []*discordgo.ApplicationCommand {
	cmds := r.All()
	defs := make([]*discordgo.ApplicationCommand, 0, len(cmds))
	for _, cmd := range cmds {
		defs = append(defs, &discordgo.ApplicationCommand{
			Name:        cmd.Name(),
			Description: cmd.Description(),
			Options:     cmd.Options(),
		})
	}
	return defs
}
