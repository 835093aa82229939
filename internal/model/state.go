package model

import (
	"fmt"

	"fyne.io/fyne/v2/data/binding"
)

// GroupState is the reactive UI state for one expander group, mirrored from
// the accordion's attribute sync. All display widgets bind to these values.
type GroupState struct {
	// Open mirrors each pane's logical open state, by index.
	Open []binding.Bool

	// LastEvent holds the most recent lifecycle event, e.g. "opened #2".
	LastEvent binding.String

	// Status is the user-facing status line: the last event, or an error
	// message when something failed.
	Status binding.String
}

// NewGroupState creates a GroupState for n panes with initialized bindings.
func NewGroupState(n int) *GroupState {
	s := &GroupState{
		LastEvent: binding.NewString(),
		Status:    binding.NewString(),
	}
	for i := 0; i < n; i++ {
		s.Open = append(s.Open, binding.NewBool())
	}
	_ = s.Status.Set("Ready")
	return s
}

// SetOpen mirrors a pane's open state. Out-of-range indices are ignored.
func (s *GroupState) SetOpen(index int, open bool) {
	if index < 0 || index >= len(s.Open) {
		return
	}
	_ = s.Open[index].Set(open)
}

// IsOpen reads a pane's mirrored open state.
func (s *GroupState) IsOpen(index int) bool {
	if index < 0 || index >= len(s.Open) {
		return false
	}
	open, _ := s.Open[index].Get()
	return open
}

// SetLastEvent records a lifecycle event and promotes it to the status line.
func (s *GroupState) SetLastEvent(event string, index int) {
	msg := fmt.Sprintf("%s #%d", event, index)
	_ = s.LastEvent.Set(msg)
	_ = s.Status.Set(msg)
}

// SetError replaces the status line with an error message.
func (s *GroupState) SetError(message string) {
	_ = s.Status.Set(message)
}
