package accordion

import (
	"time"

	"github.com/magicspon/spon-expander/internal/anim"
)

// DefaultDuration is the animation duration used when none is configured.
const DefaultDuration = 300 * time.Millisecond

// Options configures an Accordion. Construct it with DefaultOptions and
// override fields as needed; the zero value would treat pane 0 as the
// initially active pane.
type Options struct {
	// ActiveIndex is the pane that starts open, applied without animation
	// and without events. Negative means none.
	ActiveIndex int

	// CloseOthers enforces single-open-pane exclusivity: activating a pane
	// collapses the previously active one.
	CloseOthers bool

	// Duration is the animation duration for one transition.
	Duration time.Duration

	// Easing shapes the height interpolation. Defaults to quadratic
	// ease-in-out.
	Easing anim.Easing
}

// DefaultOptions returns the documented defaults: no pane open, no
// exclusivity, 300ms quadratic ease-in-out.
func DefaultOptions() Options {
	return Options{
		ActiveIndex: -1,
		Duration:    DefaultDuration,
		Easing:      anim.QuadEaseInOut,
	}
}

func (o *Options) normalize() {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.Easing == nil {
		o.Easing = anim.QuadEaseInOut
	}
}
