package storage

import (
	"os"
	"path/filepath"
)

const appDir = ".spon-expander"

// DefaultStoragePath returns the default storage location for the expander.
// Platform-specific paths:
//   - macOS/Linux: ~/.spon-expander
//   - Windows: %USERPROFILE%\.spon-expander
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir), nil
}
