package core

import (
	"poegate/internal/config"
	"poegate/internal/poe"
	"poegate/internal/store"
)

// System bundles the collaborators a command needs at runtime.
type System interface {
	GetConfig() *config.Configuration
	GetStore() *store.Store
	GetPoe() poe.Client
}

type SystemImpl struct {
	Config *config.Configuration
	Store  *store.Store
	Poe    poe.Client
}

func (s *SystemImpl) GetConfig() *config.Configuration {
	return s.Config
}

func (s *SystemImpl) GetStore() *store.Store {
	return s.Store
}

func (s *SystemImpl) GetPoe() poe.Client {
	return s.Poe
}
