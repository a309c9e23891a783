package commands

import (
	"strings"
	"testing"

	mocktest "poegate/internal/testing"
)

func helpRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(&AskPoeCommand{})
	registry.Register(&LLMListCommand{})
	registry.Register(NewReloadCommand(registry))
	registry.Register(NewHelpCommand(registry))
	return registry
}

func TestHelp_ListsCommands(t *testing.T) {
	registry := helpRegistry()
	cmd, _ := registry.Get("help")

	ctx := mocktest.NewMockContext(t)
	cmd.Execute(ctx)

	if len(ctx.Acks) != 1 {
		t.Fatalf("expected a single help response, got %d", len(ctx.Acks))
	}
	help := ctx.Acks[0]
	if !strings.HasPrefix(help, "**PoeBot Commands:**") {
		t.Errorf("expected help header, got %q", help)
	}
	for _, want := range []string{
		"`/askpoe prompt: <prompt>` - Send a prompt to Poe.com and receive a reply.",
		"`/llm-list` - List all available LLM models.",
		"`/help` - Display available commands.",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("expected %q in help, got:\n%s", want, help)
		}
	}
}

func TestHelp_HidesAdminCommands(t *testing.T) {
	registry := helpRegistry()
	cmd, _ := registry.Get("help")

	ctx := mocktest.NewMockContext(t).WithAdmin(false)
	cmd.Execute(ctx)

	if ctx.HasAck("/reload") {
		t.Error("expected admin-only command hidden from non-admins")
	}

	ctx = mocktest.NewMockContext(t).WithAdmin(true)
	cmd.Execute(ctx)

	if !ctx.HasAck("/reload") {
		t.Error("expected admin-only command listed for admins")
	}
}
