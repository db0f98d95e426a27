package memory

import (
	"context"
	"sync"

	"github.com/lumelec/backoffice/internal/domain/settings"
)

// SettingsStore holds the settings singleton
type SettingsStore struct {
	mu       sync.RWMutex
	settings *settings.Settings
	seed     *settings.Settings
}

var _ settings.Repository = (*SettingsStore)(nil)

func NewSettingsStore(seed *settings.Settings) *SettingsStore {
	s := &SettingsStore{seed: seed}
	s.Reset()
	return s
}

func (s *SettingsStore) Get(_ context.Context) (*settings.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.Copy(), nil
}

// Update applies fn to a copy and commits it only when fn succeeds
func (s *SettingsStore) Update(_ context.Context, fn func(*settings.Settings) error) (*settings.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.settings.Copy()
	if err := fn(updated); err != nil {
		return nil, err
	}
	s.settings = updated
	return updated.Copy(), nil
}

func (s *SettingsStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = s.seed.Copy()
}
