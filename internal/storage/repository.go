package storage

import "github.com/magicspon/spon-expander/internal/domain"

// Repository defines persistence operations for the expander demo. Only
// configuration travels through it — pane open state never does.
type Repository interface {
	// Settings operations
	SaveSettings(settings domain.Settings) error
	LoadSettings() (domain.Settings, error)

	// Profile operations
	SaveProfile(profile domain.Profile) error
	LoadProfile(name string) (*domain.Profile, error)
	ListProfiles() ([]string, error)
	DeleteProfile(name string) error
}
