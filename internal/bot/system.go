package bot

import (
	"go.uber.org/zap"

	"poegate/internal/config"
	"poegate/internal/core"
	"poegate/internal/poe"
	"poegate/internal/store"
)

func NewSystem(c *config.Configuration) core.System {
	s := core.SystemImpl{}
	s.Config = c

	// Load per-guild model choices, upgrading any legacy bare-string
	// entries to full records before anything reads them
	s.Store = store.NewStore(c.Store.File, c.Store.DefaultModel)
	s.Store.Load()
	if s.Store.MigrateAll() {
		if err := s.Store.Persist(); err != nil {
			zap.S().Warnw("Failed to persist migrated state", "error", err)
		}
	}
	if s.Store.EnsureDefault(c.Discord.GuildID) {
		zap.S().Infow("Seeded default model for guild", "guild", c.Discord.GuildID, "model", c.Store.DefaultModel)
	}
	zap.S().Infow("Loaded guild model choices", "count", s.Store.Len(), "path", c.Store.File)

	s.Poe = poe.NewHTTPClient(c.Poe)

	return &s
}
