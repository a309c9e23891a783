package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Record holds one guild's model selection and the provider-side chat
// thread bound to it. A nil ChatID means the next prompt starts a fresh
// conversation.
type Record struct {
	Model  string  `json:"model"`
	ChatID *string `json:"chatId"`
}

// Store maps guild IDs to Records, mirrored to a JSON file. Values in the
// file may still be in the legacy bare-string form ("gpt4" instead of a
// record); Load stages those and MigrateAll converts them, so nothing past
// startup ever observes the old shape.
type Store struct {
	mu           sync.RWMutex
	path         string
	defaultModel string
	records      map[string]Record
	legacy       map[string]string
}

func NewStore(path, defaultModel string) *Store {
	return &Store{
		path:         path,
		defaultModel: defaultModel,
		records:      make(map[string]Record),
		legacy:       make(map[string]string),
	}
}

// Load reads the state file into memory. A missing file starts empty; an
// unreadable or corrupt file is logged and starts empty too, so a bad
// state file never takes the bot down.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]Record)
	s.legacy = make(map[string]string)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}
	if err != nil {
		zap.S().Warnw("state file unreadable, starting empty", "path", s.path, "error", err)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		zap.S().Warnw("state file corrupt, starting empty", "path", s.path, "error", err)
		return
	}

	for id, val := range raw {
		var rec Record
		if err := json.Unmarshal(val, &rec); err == nil {
			s.records[id] = rec
			continue
		}
		var model string
		if err := json.Unmarshal(val, &model); err == nil {
			s.legacy[id] = model
			continue
		}
		zap.S().Warnw("skipping unrecognized state entry", "guild", id)
	}
}

// MigrateAll converts entries loaded in the legacy bare-string form into
// full records with no open chat. It reports whether anything changed, so
// the caller knows to persist the upgraded file. Running it again is a
// no-op.
func (s *Store) MigrateAll() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.legacy) == 0 {
		return false
	}
	for id, model := range s.legacy {
		s.records[id] = Record{Model: model}
		zap.S().Infow("migrated legacy entry", "guild", id, "model", model)
	}
	s.legacy = make(map[string]string)
	return true
}

// EnsureDefault inserts a default-model record for the guild if it has
// none. Reports whether an insert happened.
func (s *Store) EnsureDefault(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[guildID]; ok {
		return false
	}
	s.records[guildID] = Record{Model: s.defaultModel}
	return true
}

// Get returns the guild's record, or a transient default-model record if
// the guild has none. The default is not inserted.
func (s *Store) Get(guildID string) Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, ok := s.records[guildID]; ok {
		return rec
	}
	return Record{Model: s.defaultModel}
}

// Lookup returns the guild's record and whether one exists.
func (s *Store) Lookup(guildID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[guildID]
	return rec, ok
}

// SetModel selects a model for the guild, creating the entry if absent.
// Any open chat is dropped, since a thread is tied to one model.
func (s *Store) SetModel(guildID, model string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[guildID] = Record{Model: model}
}

// SetChatID binds an open chat thread to the guild. No-op when the guild
// has no entry; reports whether the update took.
func (s *Store) SetChatID(guildID, chatID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[guildID]
	if !ok {
		return false
	}
	rec.ChatID = &chatID
	s.records[guildID] = rec
	return true
}

// ClearChat drops the guild's open chat thread, keeping the model.
// Reports whether the guild had an entry at all.
func (s *Store) ClearChat(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[guildID]
	if !ok {
		return false
	}
	rec.ChatID = nil
	s.records[guildID] = rec
	return true
}

// Len returns the number of guild entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// Persist rewrites the whole state file from memory. The write goes to a
// temp file first and lands with a rename, so readers never see a partial
// file. The lock is held across the rename; concurrent Persists share one
// temp path and must not interleave. On failure the in-memory state is
// still good; only the durable copy is stale.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
