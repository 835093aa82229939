package ui

import (
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/magicspon/spon-expander/internal/accordion"
	"github.com/magicspon/spon-expander/internal/anim"
	"github.com/magicspon/spon-expander/internal/domain"
)

// AppController defines the app-level operations the window needs.
type AppController interface {
	Logger() *slog.Logger
	Settings() domain.Settings
	UpdateSettings(settings domain.Settings) error
	Profile() *domain.Profile
}

// MainWindow manages the demo window: the expander group built from the
// active profile, a preferences sidebar, and a status bar.
type MainWindow struct {
	window fyne.Window
	app    AppController
	logger *slog.Logger

	group     *Group
	statusBar *StatusBar
	groupSlot *fyne.Container // holds the current group so it can be rebuilt
}

// NewMainWindow creates the main window with the demo layout: preferences on
// the left, the expander in the middle, status at the bottom.
func NewMainWindow(fyneApp fyne.App, app AppController) (*MainWindow, error) {
	window := fyneApp.NewWindow("Spon Expander")

	mw := &MainWindow{
		window: window,
		app:    app,
		logger: app.Logger(),
	}

	group, err := mw.buildGroup()
	if err != nil {
		return nil, err
	}
	mw.group = group
	mw.statusBar = NewStatusBar(group.State())
	mw.groupSlot = container.NewStack(group)

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRestoreIcon(), func() {
			mw.logger.Debug("toolbar: collapse all")
			mw.group.CollapseAll()
		}),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.InfoIcon(), func() {
			ShowAboutDialog(window)
		}),
	)

	content := container.NewBorder(
		toolbar,
		mw.statusBar,
		mw.buildPreferences(fyneApp),
		nil,
		container.NewVScroll(mw.groupSlot),
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(760, 520))

	mw.setupKeyboardShortcuts()

	return mw, nil
}

// Window returns the underlying Fyne window.
func (w *MainWindow) Window() fyne.Window {
	return w.window
}

// Group returns the current expander group.
func (w *MainWindow) Group() *Group {
	return w.group
}

// buildGroup constructs a Group from the active profile and settings.
func (w *MainWindow) buildGroup() (*Group, error) {
	profile := w.app.Profile()
	return NewGroup(profile.Sections, buildOptions(profile, w.app.Settings()), nil, w.logger)
}

// rebuildGroup replaces the group after a preference change. The old group
// is destroyed first so its in-flight animations go quiet.
func (w *MainWindow) rebuildGroup() {
	group, err := w.buildGroup()
	if err != nil {
		w.logger.Error("failed to rebuild group", slog.String("error", err.Error()))
		return
	}
	w.group.Destroy()
	w.group = group
	w.statusBar.SetState(group.State())
	w.groupSlot.Objects = []fyne.CanvasObject{group}
	w.groupSlot.Refresh()
}

// buildPreferences creates the sidebar that edits persisted settings.
func (w *MainWindow) buildPreferences(fyneApp fyne.App) fyne.CanvasObject {
	settings := w.app.Settings()

	durationLabel := widget.NewLabel(durationText(settings.DurationMS))
	duration := widget.NewSlider(50, 1000)
	duration.Step = 50
	duration.Value = float64(settings.DurationMS)
	duration.OnChangeEnded = func(v float64) {
		s := w.app.Settings()
		if s.DurationMS == int(v) {
			return
		}
		s.DurationMS = int(v)
		w.persist(s)
		durationLabel.SetText(durationText(s.DurationMS))
		w.rebuildGroup()
	}

	easing := widget.NewSelect(anim.Names(), func(name string) {
		s := w.app.Settings()
		if s.Easing == name {
			return
		}
		s.Easing = name
		w.persist(s)
		w.rebuildGroup()
	})
	easing.SetSelected(settings.Easing)

	closeOthers := widget.NewCheck("Close others", func(checked bool) {
		s := w.app.Settings()
		if s.CloseOthers == checked {
			return
		}
		s.CloseOthers = checked
		w.persist(s)
		w.rebuildGroup()
	})
	closeOthers.SetChecked(settings.CloseOthers)

	themeMode := widget.NewSelect([]string{"system", "light", "dark"}, func(mode string) {
		s := w.app.Settings()
		if s.Theme == mode || (s.Theme == "" && mode == "system") {
			return
		}
		s.Theme = mode
		w.persist(s)
		ApplyTheme(fyneApp, mode)
	})
	if settings.Theme == "" {
		themeMode.SetSelected("system")
	} else {
		themeMode.SetSelected(settings.Theme)
	}

	return container.NewVBox(
		widget.NewLabelWithStyle("Preferences", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		durationLabel,
		duration,
		widget.NewLabel("Easing"),
		easing,
		closeOthers,
		widget.NewLabel("Theme"),
		themeMode,
	)
}

func (w *MainWindow) persist(s domain.Settings) {
	if err := w.app.UpdateSettings(s); err != nil {
		w.logger.Warn("failed to save settings", slog.String("error", err.Error()))
	}
}

func durationText(ms int) string {
	return "Duration: " + strconv.Itoa(ms) + "ms"
}

// buildOptions maps profile content and user preferences onto accordion
// options. The profile's exclusivity flag and the user preference are OR-ed:
// either source may demand single-open behavior.
func buildOptions(profile *domain.Profile, settings domain.Settings) accordion.Options {
	opts := accordion.DefaultOptions()
	opts.Duration = settings.Duration()
	if easing, ok := anim.ByName(settings.Easing); ok {
		opts.Easing = easing
	}
	opts.CloseOthers = settings.CloseOthers || profile.CloseOthers
	if profile.ActiveIndex != nil {
		opts.ActiveIndex = *profile.ActiveIndex
	}
	return opts
}
