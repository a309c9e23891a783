package testing

import (
	"time"

	"poegate/internal/config"
)

// DefaultTestConfig returns a minimal configuration for testing
func DefaultTestConfig() *config.Configuration {
	return &config.Configuration{
		Discord: &config.DiscordConfig{
			Token:   "test-token",
			GuildID: "100000000000000000",
		},
		Poe: &config.PoeConfig{
			URL:     "https://poe.test.local",
			PB:      "test-pb",
			Lat:     "test-lat",
			Timeout: time.Second * 30,
		},
		Bot: &config.BotConfig{
			Admins:  []string{},
			Verbose: false,
		},
		Store: &config.StoreConfig{
			File:         "llm_choices.json",
			DefaultModel: "gpt3_5",
		},
	}
}
