package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	fyneapp "fyne.io/fyne/v2/app"

	expanderApp "github.com/magicspon/spon-expander/internal/app"
	"github.com/magicspon/spon-expander/internal/ui"
)

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// runApp is the main application entry point with panic recovery.
func runApp() (err error) {
	// Create a temporary stdout logger for bootstrap errors
	tempLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Recover from panics
	defer func() {
		if r := recover(); r != nil {
			tempLogger.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	tempLogger.Info("starting Spon Expander")

	// Load configuration from environment
	cfg := expanderApp.ConfigFromEnv()

	// Create Fyne application
	fyneApp := fyneapp.NewWithID("com.magicspon.expander")

	// Create and wire the application
	application, err := expanderApp.New(fyneApp, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ui.ApplyTheme(fyneApp, application.Settings().Theme)

	// Create main window
	mainWindow, err := ui.NewMainWindow(application.FyneApp(), application)
	if err != nil {
		return fmt.Errorf("failed to build main window: %w", err)
	}

	// Run the application (blocking)
	application.Run(mainWindow.Window())

	application.Logger().Info("application shutdown complete")
	return nil
}
