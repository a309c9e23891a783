package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Configuration {
	return &Configuration{
		Discord: &DiscordConfig{
			Token:   "token-abc",
			GuildID: "123456789012345678",
		},
		Poe: &PoeConfig{
			URL:     "https://poe.com",
			PB:      "pb-cookie",
			Lat:     "lat-cookie",
			Timeout: time.Minute,
		},
		Bot:   &BotConfig{},
		Store: &StoreConfig{File: "llm_choices.json", DefaultModel: "gpt3_5"},
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Configuration)
		wantErr string
	}{
		{
			name:    "missing token",
			mutate:  func(c *Configuration) { c.Discord.Token = "" },
			wantErr: "discord token",
		},
		{
			name:    "missing pb cookie",
			mutate:  func(c *Configuration) { c.Poe.PB = "" },
			wantErr: "p-b",
		},
		{
			name:    "missing lat cookie",
			mutate:  func(c *Configuration) { c.Poe.Lat = "" },
			wantErr: "p-lat",
		},
		{
			name:    "missing guild id",
			mutate:  func(c *Configuration) { c.Discord.GuildID = "" },
			wantErr: "guild id",
		},
		{
			name:    "non-integer guild id",
			mutate:  func(c *Configuration) { c.Discord.GuildID = "my-guild" },
			wantErr: "not an integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestYamlSourceLookup(t *testing.T) {
	src := &YamlSource{
		data: map[string]any{
			"guildid": 123456789012345678,
			"admins":  []any{"111", "222"},
		},
		key: "guildid",
	}

	v, ok := src.Lookup()
	if !ok || v != "123456789012345678" {
		t.Errorf("expected guildid lookup to succeed, got %q ok=%t", v, ok)
	}

	src.key = "admins"
	v, ok = src.Lookup()
	if !ok || v != "111,222" {
		t.Errorf("expected slice values joined by comma, got %q ok=%t", v, ok)
	}

	src.key = "missing"
	if _, ok := src.Lookup(); ok {
		t.Error("expected lookup miss for unknown key")
	}
}
