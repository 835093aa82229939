package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/magicspon/spon-expander/internal/model"
)

// StatusBar shows the last lifecycle event or error for a group. The icon
// shape changes with the kind of message (not color-only):
//   - info icon for lifecycle events
//   - warning icon for error messages
type StatusBar struct {
	widget.BaseWidget

	state       *model.GroupState
	statusLabel *widget.Label
	indicator   *widget.Icon
}

// NewStatusBar creates a status bar bound to the given group state.
func NewStatusBar(state *model.GroupState) *StatusBar {
	label := widget.NewLabel("Ready")
	label.Truncation = fyne.TextTruncateEllipsis

	s := &StatusBar{
		state:       state,
		statusLabel: label,
		indicator:   widget.NewIcon(theme.InfoIcon()),
	}
	s.ExtendBaseWidget(s)

	state.Status.AddListener(binding.NewDataListener(s.updateStatus))
	s.updateStatus()

	return s
}

// SetState rebinds the status bar to a different group state, used when the
// group is rebuilt after a preference change.
func (s *StatusBar) SetState(state *model.GroupState) {
	s.state = state
	state.Status.AddListener(binding.NewDataListener(s.updateStatus))
	s.updateStatus()
}

// updateStatus refreshes the label and indicator from the bound state.
func (s *StatusBar) updateStatus() {
	status, _ := s.state.Status.Get()
	lastEvent, _ := s.state.LastEvent.Get()

	if status == "" {
		status = "Ready"
	}
	s.statusLabel.SetText(status)

	// A status that diverges from the last event means an error message
	// replaced it.
	if status != "Ready" && status != lastEvent {
		s.indicator.SetResource(theme.WarningIcon())
	} else {
		s.indicator.SetResource(theme.InfoIcon())
	}
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	bar := container.NewBorder(nil, nil, s.indicator, nil, s.statusLabel)
	return widget.NewSimpleRenderer(bar)
}
