package app

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"

	"github.com/magicspon/spon-expander/internal/domain"
	"github.com/magicspon/spon-expander/internal/logging"
	"github.com/magicspon/spon-expander/internal/storage"
)

// App is the main application coordinator, responsible for wiring together
// all components and managing their lifecycle.
type App struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *Config
	logger   *slog.Logger
	storage  storage.Repository
	settings domain.Settings
	profile  *domain.Profile
}

// New creates a new App instance with the given configuration.
// This performs all dependency injection and wiring.
func New(fyneApp fyne.App, cfg *Config) (*App, error) {
	logger, err := logging.InitLogger("spon-expander", cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("initializing expander application",
		slog.Bool("debug", cfg.Debug),
		slog.String("storage_path", cfg.StoragePath),
		slog.String("profile", cfg.Profile),
	)

	storagePath := cfg.StoragePath
	if storagePath == "" {
		storagePath, err = storage.DefaultStoragePath()
		if err != nil {
			return nil, fmt.Errorf("failed to determine storage path: %w", err)
		}
	}

	repo := storage.NewJSONRepository(storagePath, logger)

	settings, err := repo.LoadSettings()
	if err != nil {
		logger.Warn("failed to load settings, using defaults",
			slog.String("error", err.Error()))
		settings = domain.DefaultSettings()
	}

	profile, err := loadProfile(repo, cfg.Profile, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("application initialized successfully",
		slog.String("profile", profile.Name),
		slog.Int("sections", len(profile.Sections)),
	)

	return &App{
		fyneApp:  fyneApp,
		config:   cfg,
		logger:   logger,
		storage:  repo,
		settings: settings,
		profile:  profile,
	}, nil
}

// loadProfile resolves the active profile: a named saved profile when
// configured, the built-in demo profile otherwise.
func loadProfile(repo storage.Repository, name string, logger *slog.Logger) (*domain.Profile, error) {
	if name == "" {
		return DefaultProfile(), nil
	}
	profile, err := repo.LoadProfile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %q: %w", name, err)
	}
	logger.Info("loaded profile", slog.String("name", name))
	return profile, nil
}

// DefaultProfile returns the built-in demo profile used when no saved
// profile is configured.
func DefaultProfile() *domain.Profile {
	return &domain.Profile{
		Name: "demo",
		Sections: []domain.Section{
			{
				Title: "What is this?",
				Body: "An accordion widget. Each section has a trigger and a " +
					"content panel; activating the trigger animates the panel " +
					"open or closed.",
			},
			{
				Title: "How do the animations work?",
				Body: "Heights are measured when a transition starts, then " +
					"interpolated over the configured duration with the " +
					"selected easing curve. A section that is mid-transition " +
					"ignores further activations until it settles.",
			},
			{
				Title: "What does \"close others\" do?",
				Body: "With exclusivity enabled, opening a section collapses " +
					"the previously active one, so at most one section stays " +
					"open.",
			},
		},
	}
}

// Run starts the application and displays the main window.
// This is a blocking call that runs the Fyne event loop.
func (a *App) Run(window fyne.Window) {
	a.window = window
	a.logger.Info("starting application")
	a.window.ShowAndRun()
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Storage returns the storage repository.
func (a *App) Storage() storage.Repository {
	return a.storage
}

// Settings returns the current user preferences.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// UpdateSettings persists new preferences and keeps them as the current
// settings. The in-memory copy is updated even if persistence fails, so the
// running session stays consistent with what the user chose.
func (a *App) UpdateSettings(settings domain.Settings) error {
	a.settings = settings
	if err := a.storage.SaveSettings(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Profile returns the active accordion profile.
func (a *App) Profile() *domain.Profile {
	return a.profile
}

// FyneApp returns the underlying Fyne application instance.
func (a *App) FyneApp() fyne.App {
	return a.fyneApp
}
