package testing

import (
	"path/filepath"
	"testing"

	"poegate/internal/config"
	"poegate/internal/core"
	"poegate/internal/poe"
	"poegate/internal/store"
)

// MockSystem implements core.System for testing
type MockSystem struct {
	Config *config.Configuration
	Store  *store.Store
	Poe    *MockPoe
}

// Verify MockSystem implements core.System
var _ core.System = (*MockSystem)(nil)

// NewMockSystem creates a MockSystem with sensible defaults. The store
// writes under the test's temp dir, so Persist works and the file is
// cleaned up with the test.
func NewMockSystem(t testing.TB) *MockSystem {
	statefile := filepath.Join(t.TempDir(), "llm_choices.json")
	return &MockSystem{
		Config: DefaultTestConfig(),
		Store:  store.NewStore(statefile, "gpt3_5"),
		Poe:    NewMockPoe(),
	}
}

// GetConfig implements core.System
func (m *MockSystem) GetConfig() *config.Configuration {
	return m.Config
}

// GetStore implements core.System
func (m *MockSystem) GetStore() *store.Store {
	return m.Store
}

// GetPoe implements core.System
func (m *MockSystem) GetPoe() poe.Client {
	return m.Poe
}
