package commands

import (
	"errors"
	"testing"

	mocktest "poegate/internal/testing"
)

func TestLLMList_ListsModels(t *testing.T) {
	sys := mocktest.NewMockSystem(t)
	sys.Poe.Bots = []string{"claude", "gpt4"}

	ctx := mocktest.NewMockContext(t).WithSystem(sys)

	(&LLMListCommand{}).Execute(ctx)

	if !ctx.HasAck("Fetching available LLM models") {
		t.Error("expected fetching ack")
	}
	want := "**Available LLM Models:**\n- claude\n- gpt4"
	if ctx.LastFollowUp() != want {
		t.Errorf("expected %q, got %q", want, ctx.LastFollowUp())
	}
}

func TestLLMList_NoModels(t *testing.T) {
	sys := mocktest.NewMockSystem(t)
	sys.Poe.Bots = nil

	ctx := mocktest.NewMockContext(t).WithSystem(sys)

	(&LLMListCommand{}).Execute(ctx)

	if !ctx.HasFollowUp("No available models found") {
		t.Errorf("expected empty-list message, got %v", ctx.FollowUps)
	}
}

func TestLLMList_ProviderError(t *testing.T) {
	sys := mocktest.NewMockSystem(t)
	sys.Poe.BotsErr = errors.New("poe unavailable")

	ctx := mocktest.NewMockContext(t).WithSystem(sys)

	(&LLMListCommand{}).Execute(ctx)

	if !ctx.HasFollowUp("error fetching the models") {
		t.Errorf("expected error message, got %v", ctx.FollowUps)
	}
}
