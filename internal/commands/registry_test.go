package commands

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"poegate/internal/discord"
	mocktest "poegate/internal/testing"
)

// mockCommand is a simple test command
type mockCommand struct {
	name      string
	adminOnly bool
	executed  bool
}

func (c *mockCommand) Name() string        { return c.name }
func (c *mockCommand) Description() string { return c.name + " does things" }
func (c *mockCommand) AdminOnly() bool     { return c.adminOnly }

func (c *mockCommand) Options() []*discordgo.ApplicationCommandOption { return nil }

func (c *mockCommand) Execute(ctx discord.InteractionContextInterface) {
	c.executed = true
}

func TestRegistry_CommandRouting(t *testing.T) {
	registry := NewRegistry()

	resetCmd := &mockCommand{name: "reset"}
	clearCmd := &mockCommand{name: "clear"}

	registry.Register(resetCmd)
	registry.Register(clearCmd)

	ctx := mocktest.NewMockContext(t).WithCommand("reset")

	if !registry.Dispatch(ctx) {
		t.Fatal("expected dispatch to handle the command")
	}
	if !resetCmd.executed {
		t.Error("expected reset command to be executed")
	}
	if clearCmd.executed {
		t.Error("expected clear command NOT to be executed")
	}
}

func TestRegistry_UnknownCommand(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&mockCommand{name: "reset"})

	ctx := mocktest.NewMockContext(t).WithCommand("bogus")

	if registry.Dispatch(ctx) {
		t.Error("expected dispatch to reject an unknown command")
	}
	if len(ctx.Acks) != 0 || len(ctx.FollowUps) != 0 {
		t.Error("expected no responses for an unknown command")
	}
}

func TestRegistry_AdminOnlyEnforcement(t *testing.T) {
	registry := NewRegistry()

	adminCmd := &mockCommand{name: "reload", adminOnly: true}
	registry.Register(adminCmd)

	// Non-admin tries to call admin command
	ctx := mocktest.NewMockContext(t).
		WithAdmin(false).
		WithCommand("reload")

	registry.Dispatch(ctx)

	if adminCmd.executed {
		t.Error("admin-only command should NOT be executed for non-admin")
	}
	if len(ctx.Acks) != 1 {
		t.Fatalf("expected 1 response (permission error), got %d", len(ctx.Acks))
	}
	if !ctx.HasAck("permission") {
		t.Errorf("expected permission error, got: %s", ctx.Acks[0])
	}

	// Admin can call the command
	adminCmd.executed = false
	ctx = mocktest.NewMockContext(t).
		WithAdmin(true).
		WithCommand("reload")

	registry.Dispatch(ctx)

	if !adminCmd.executed {
		t.Error("admin-only command should be executed for admin")
	}
}

func TestRegistry_AllSortedByName(t *testing.T) {
	registry := NewRegistry()

	registry.Register(&mockCommand{name: "reset"})
	registry.Register(&mockCommand{name: "askpoe"})
	registry.Register(&mockCommand{name: "llm-list"})

	all := registry.All()

	want := []string{"askpoe", "llm-list", "reset"}
	if len(all) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(all))
	}
	for i, name := range want {
		if all[i].Name() != name {
			t.Errorf("position %d: expected %s, got %s", i, name, all[i].Name())
		}
	}
}

func TestRegistry_ApplicationCommands(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&mockCommand{name: "askpoe"})
	registry.Register(&mockCommand{name: "help"})

	defs := registry.ApplicationCommands()

	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	for _, def := range defs {
		if def.Name == "" || def.Description == "" {
			t.Errorf("definition missing name or description: %+v", def)
		}
	}
}

func TestRegistry_GetCommand(t *testing.T) {
	registry := NewRegistry()

	cmd := &mockCommand{name: "info"}
	registry.Register(cmd)

	found, ok := registry.Get("info")
	if !ok {
		t.Error("expected to find info command")
	}
	if found.Name() != "info" {
		t.Errorf("expected info, got %s", found.Name())
	}

	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("expected NOT to find nonexistent command")
	}
}
