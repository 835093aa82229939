package accordion

import (
	"time"

	"github.com/magicspon/spon-expander/internal/anim"
)

// Animator produces intermediate height values between start and end over a
// duration, then signals completion. Implementations must deliver apply and
// done on the same goroutine that drives the accordion (for the UI animator
// this is the Fyne event loop); done must be called exactly once.
type Animator interface {
	Animate(start, end float32, duration time.Duration, easing anim.Easing, apply func(float32), done func())
}

// Measurer reports pane content heights. A returned error aborts the
// transition with a measurement failure and full state rollback.
type Measurer interface {
	// ContentHeight returns the natural fully expanded height of the pane's
	// content, used as the end value when expanding.
	ContentHeight(index int) (float32, error)

	// CurrentHeight returns the currently rendered height of the pane, used
	// as the start value when collapsing.
	CurrentHeight(index int) (float32, error)
}

// AttributeSync mirrors pane state into external presentation attributes.
// The accordion tells it what is true; how that is rendered (styles, icons,
// accessibility attributes) is entirely the implementation's concern.
type AttributeSync interface {
	// SetExpanded mirrors the pane's logical open state.
	SetExpanded(index int, open bool)

	// SetHeight applies a transient height override for one animation frame.
	SetHeight(index int, height float32)

	// ClearHeight removes the transient override, restoring natural sizing
	// for the pane's current expanded state.
	ClearHeight(index int)
}

// Deps bundles the external collaborators an Accordion is constructed with.
type Deps struct {
	Animator Animator
	Measurer Measurer
	Sync     AttributeSync
}

func (d Deps) validate() error {
	switch {
	case d.Animator == nil:
		return errMissingDep("Animator")
	case d.Measurer == nil:
		return errMissingDep("Measurer")
	case d.Sync == nil:
		return errMissingDep("Sync")
	}
	return nil
}
