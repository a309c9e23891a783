package commands

import (
	"errors"
	"testing"

	mocktest "poegate/internal/testing"
)

func TestLLMSet_ValidModel(t *testing.T) {
	sys := mocktest.NewMockSystem(t)
	sys.Store.SetModel("g1", "gpt3_5")
	sys.Store.SetChatID("g1", "chat-1")

	ctx := mocktest.NewMockContext(t).
		WithSystem(sys).
		WithGuild("g1").
		WithOption("model", "claude")

	(&LLMSetCommand{}).Execute(ctx)

	if !ctx.HasAck("Setting your preferred LLM model") {
		t.Error("expected setting ack")
	}
	if !ctx.HasFollowUp("has been set to `claude`") {
		t.Errorf("expected confirmation, got %v", ctx.FollowUps)
	}

	rec, ok := sys.Store.Lookup("g1")
	if !ok || rec.Model != "claude" {
		t.Errorf("expected claude selected, got %+v", rec)
	}
	if rec.ChatID != nil {
		t.Error("expected open chat thread dropped on model change")
	}
}

func TestLLMSet_InvalidModel(t *testing.T) {
	sys := mocktest.NewMockSystem(t)
	sys.Store.SetModel("g2", "gpt3_5")

	ctx := mocktest.NewMockContext(t).
		WithSystem(sys).
		WithGuild("g2").
		WithOption("model", "not-a-model")

	(&LLMSetCommand{}).Execute(ctx)

	if !ctx.HasFollowUp("`not-a-model` is not a valid model") {
		t.Errorf("expected invalid-model message, got %v", ctx.FollowUps)
	}

	rec, _ := sys.Store.Lookup("g2")
	if rec.Model != "gpt3_5" {
		t.Errorf("expected selection unchanged, got %s", rec.Model)
	}
}

func TestLLMSet_ProviderError(t *testing.T) {
	sys := mocktest.NewMockSystem(t)
	sys.Poe.BotsErr = errors.New("poe unavailable")

	ctx := mocktest.NewMockContext(t).
		WithSystem(sys).
		WithGuild("g3").
		WithOption("model", "claude")

	(&LLMSetCommand{}).Execute(ctx)

	if !ctx.HasFollowUp("error setting your preferred model") {
		t.Errorf("expected error message, got %v", ctx.FollowUps)
	}
	if _, ok := sys.Store.Lookup("g3"); ok {
		t.Error("expected no selection recorded when validation is unavailable")
	}
}
