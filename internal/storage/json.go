package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/magicspon/spon-expander/internal/domain"
)

const (
	profilesDir    = "profiles"
	settingsFile   = "settings.json"
	filePermission = 0644
	dirPermission  = 0755
)

// JSONRepository implements Repository on the filesystem: settings as a JSON
// file, profiles as YAML documents under a profiles directory.
type JSONRepository struct {
	basePath string
	logger   *slog.Logger
}

// NewJSONRepository creates a filesystem-backed repository rooted at basePath.
func NewJSONRepository(basePath string, logger *slog.Logger) *JSONRepository {
	return &JSONRepository{
		basePath: basePath,
		logger:   logger,
	}
}

// SaveSettings persists the user preferences atomically.
func (r *JSONRepository) SaveSettings(settings domain.Settings) error {
	if err := r.ensureBaseDir(); err != nil {
		return fmt.Errorf("ensure base directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := atomicWriteFile(r.settingsPath(), data, filePermission); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	r.logger.Debug("saved settings",
		slog.Int("duration_ms", settings.DurationMS),
		slog.String("easing", settings.Easing),
		slog.Bool("close_others", settings.CloseOthers))

	return nil
}

// LoadSettings reads the persisted preferences. A missing file is not an
// error; it yields the defaults.
func (r *JSONRepository) LoadSettings() (domain.Settings, error) {
	data, err := os.ReadFile(r.settingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debug("no settings file, using defaults")
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}

	return settings, nil
}

// SaveProfile writes a profile as a YAML document named after the profile.
func (r *JSONRepository) SaveProfile(profile domain.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	if err := validateProfileName(profile.Name); err != nil {
		return fmt.Errorf("invalid profile name: %w", err)
	}
	if err := r.ensureProfilesDir(); err != nil {
		return fmt.Errorf("ensure profiles directory: %w", err)
	}

	path := r.profilePath(profile.Name)
	if err := r.verifyPathInProfilesDir(path); err != nil {
		return err
	}
	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	if err := atomicWriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("write profile file: %w", err)
	}

	r.logger.Debug("saved profile",
		slog.String("name", profile.Name),
		slog.String("path", path))

	return nil
}

// LoadProfile reads and validates a named profile.
func (r *JSONRepository) LoadProfile(name string) (*domain.Profile, error) {
	if err := validateProfileName(name); err != nil {
		return nil, fmt.Errorf("invalid profile name: %w", err)
	}
	path := r.profilePath(name)
	if err := r.verifyPathInProfilesDir(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile %q not found", name)
		}
		return nil, fmt.Errorf("read profile file: %w", err)
	}

	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile %q: %w", name, err)
	}

	r.logger.Debug("loaded profile",
		slog.String("name", name),
		slog.Int("sections", len(profile.Sections)))

	return &profile, nil
}

// ListProfiles returns the names of all saved profiles.
func (r *JSONRepository) ListProfiles() ([]string, error) {
	profilesPath := filepath.Join(r.basePath, profilesDir)

	// If directory doesn't exist, return empty list (not an error)
	if _, err := os.Stat(profilesPath); os.IsNotExist(err) {
		r.logger.Debug("profiles directory does not exist, returning empty list")
		return []string{}, nil
	}

	entries, err := os.ReadDir(profilesPath)
	if err != nil {
		return nil, fmt.Errorf("read profiles directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".yaml" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}

	r.logger.Debug("listed profiles", slog.Int("count", len(names)))
	return names, nil
}

// DeleteProfile removes a profile file.
func (r *JSONRepository) DeleteProfile(name string) error {
	if err := validateProfileName(name); err != nil {
		return fmt.Errorf("invalid profile name: %w", err)
	}
	path := r.profilePath(name)
	if err := r.verifyPathInProfilesDir(path); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("profile %q not found", name)
		}
		return fmt.Errorf("delete profile file: %w", err)
	}

	r.logger.Debug("deleted profile", slog.String("name", name))
	return nil
}

// atomicWriteFile writes data to a file atomically by writing to a temp file
// in the same directory, syncing, then renaming over the target path.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	// Clean up temp file on any failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// validateProfileName checks that a profile name is safe for use as a filename.
func validateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("profile name must not contain %q", "..")
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("profile name must not contain path separators")
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("profile name must not contain null bytes")
	}
	return nil
}

// Helper methods

func (r *JSONRepository) ensureBaseDir() error {
	if err := os.MkdirAll(r.basePath, dirPermission); err != nil {
		return fmt.Errorf("create base directory: %w", err)
	}
	return nil
}

func (r *JSONRepository) ensureProfilesDir() error {
	path := filepath.Join(r.basePath, profilesDir)
	if err := os.MkdirAll(path, dirPermission); err != nil {
		return fmt.Errorf("create profiles directory: %w", err)
	}
	return nil
}

func (r *JSONRepository) settingsPath() string {
	return filepath.Join(r.basePath, settingsFile)
}

func (r *JSONRepository) profilePath(name string) string {
	return filepath.Join(r.basePath, profilesDir, name+".yaml")
}

// verifyPathInProfilesDir checks that the resolved path is within the
// profiles directory. This is a defense-in-depth check complementing
// validateProfileName.
func (r *JSONRepository) verifyPathInProfilesDir(path string) error {
	profilesBase := filepath.Join(r.basePath, profilesDir)
	rel, err := filepath.Rel(profilesBase, path)
	if err != nil {
		return fmt.Errorf("path outside profiles directory: %w", err)
	}
	if strings.HasPrefix(rel, "..") {
		return fmt.Errorf("path %q escapes profiles directory", path)
	}
	return nil
}
