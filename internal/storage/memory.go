package storage

import (
	"fmt"
	"sync"

	"github.com/magicspon/spon-expander/internal/domain"
)

// MemoryRepository implements Repository using in-memory storage for tests.
type MemoryRepository struct {
	settings *domain.Settings
	profiles map[string]domain.Profile
	mu       sync.RWMutex
}

// NewMemoryRepository creates a new in-memory storage repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		profiles: make(map[string]domain.Profile),
	}
}

// SaveSettings stores settings in memory.
func (m *MemoryRepository) SaveSettings(settings domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = &settings
	return nil
}

// LoadSettings returns the stored settings, or the defaults when nothing has
// been saved yet.
func (m *MemoryRepository) LoadSettings() (domain.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return domain.DefaultSettings(), nil
	}
	return *m.settings, nil
}

// SaveProfile stores a profile in memory.
func (m *MemoryRepository) SaveProfile(profile domain.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.profiles[profile.Name] = profile
	return nil
}

// LoadProfile retrieves a profile from memory.
func (m *MemoryRepository) LoadProfile(name string) (*domain.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profile, ok := m.profiles[name]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", name)
	}

	return &profile, nil
}

// ListProfiles returns names of all stored profiles.
func (m *MemoryRepository) ListProfiles() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}

	return names, nil
}

// DeleteProfile removes a profile from memory.
func (m *MemoryRepository) DeleteProfile(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[name]; !ok {
		return fmt.Errorf("profile %q not found", name)
	}

	delete(m.profiles, name)
	return nil
}
