package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window.
func (w *MainWindow) setupKeyboardShortcuts() {
	canvas := w.window.Canvas()

	// Cmd+1..Cmd+9: toggle the corresponding section
	digits := []fyne.KeyName{
		fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4, fyne.Key5,
		fyne.Key6, fyne.Key7, fyne.Key8, fyne.Key9,
	}
	for i, key := range digits {
		index := i
		canvas.AddShortcut(&desktop.CustomShortcut{
			KeyName:  key,
			Modifier: fyne.KeyModifierSuper, // Cmd on macOS, Win on Windows
		}, func(_ fyne.Shortcut) {
			if index >= w.group.Accordion().Len() {
				return
			}
			w.logger.Debug("keyboard shortcut: toggle section", slog.Int("index", index))
			w.group.handleActivate(index)
		})
	}

	// Cmd+K: collapse all sections
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyK,
		Modifier: fyne.KeyModifierSuper,
	}, func(_ fyne.Shortcut) {
		w.logger.Debug("keyboard shortcut: collapse all")
		w.group.CollapseAll()
	})

	// Cmd+/: show shortcut reference
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeySlash,
		Modifier: fyne.KeyModifierSuper,
	}, func(_ fyne.Shortcut) {
		ShowShortcutDialog(w.window)
	})
}
