// Package accordion implements the pane state machine and the animated
// transition orchestrator behind the expander widget. It owns which panes
// are logically open, guards each pane against re-entrant transitions, and
// drives expand/collapse animations through injected collaborators.
//
// The accordion is single-goroutine by design: all calls, including the
// Animator's apply/done callbacks, must run on the same event loop. The
// per-pane Running flag is the only concurrency control; a transition that
// has started always runs to completion.
package accordion

import (
	"fmt"
	"log/slog"

	apperrors "github.com/magicspon/spon-expander/internal/errors"
	"github.com/magicspon/spon-expander/internal/events"
)

// Lifecycle event names. The pre-events fire synchronously before the
// animation starts; the post-events fire after terminal attributes are
// restored.
const (
	EventOpen   = "open"
	EventOpened = "opened"
	EventClose  = "close"
	EventClosed = "closed"
)

// Pane is one accordion section. Fields are mutated only by the
// orchestrator.
type Pane struct {
	// Index is the pane's stable position in the registry.
	Index int

	// Open reports whether this pane is logically expanded.
	Open bool

	// Running is true while an animation for this pane is in flight. It is
	// the mutual-exclusion guard: trigger activations on a running pane are
	// no-ops.
	Running bool

	// State is the logical state machine position, kept in lockstep with
	// Open.
	State State

	// Height is the measured content height captured when the last
	// transition started. Ephemeral.
	Height float32
}

// PaneConfig describes one pane at construction time.
type PaneConfig struct {
	InitialOpen bool
}

// Payload accompanies every lifecycle event.
type Payload struct {
	Pane  Pane
	Index int
	Panes []Pane
}

// Handler receives lifecycle events.
type Handler = events.Handler[Payload]

// Accordion tracks a fixed, ordered registry of panes and orchestrates
// their animated transitions.
type Accordion struct {
	panes   []*Pane
	current *Pane

	opts     Options
	bus      *events.Bus[Payload]
	animator Animator
	measurer Measurer
	sync     AttributeSync
	logger   *slog.Logger

	destroyed bool
}

func errMissingDep(name string) error {
	return fmt.Errorf("accordion: missing collaborator %s", name)
}

// New builds an accordion over the given pane configurations. Initial open
// state (per-pane flags plus the ActiveIndex option) is applied by syncing
// attributes directly, without animation and without events. When
// CloseOthers is set, at most one pane starts open: ActiveIndex wins,
// otherwise the first pane flagged open.
func New(panes []PaneConfig, deps Deps, opts Options, logger *slog.Logger) (*Accordion, error) {
	if len(panes) == 0 {
		return nil, fmt.Errorf("accordion: at least one pane required")
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	opts.normalize()

	open := make([]bool, len(panes))
	for i, pc := range panes {
		open[i] = pc.InitialOpen
	}
	if opts.ActiveIndex >= 0 {
		if opts.ActiveIndex >= len(panes) {
			return nil, apperrors.OutOfRange(opts.ActiveIndex)
		}
		open[opts.ActiveIndex] = true
	}
	if opts.CloseOthers {
		keep := opts.ActiveIndex
		if keep < 0 {
			for i, o := range open {
				if o {
					keep = i
					break
				}
			}
		}
		for i := range open {
			open[i] = i == keep
		}
	}

	a := &Accordion{
		opts:     opts,
		bus:      events.New[Payload](),
		animator: deps.Animator,
		measurer: deps.Measurer,
		sync:     deps.Sync,
		logger:   logger,
	}

	for i := range panes {
		p := &Pane{Index: i}
		if open[i] {
			p.Open = true
			p.State = StateOpen
			a.current = p
		}
		a.panes = append(a.panes, p)
		a.sync.SetExpanded(i, p.Open)
	}

	logger.Debug("accordion initialized",
		slog.Int("panes", len(panes)),
		slog.Bool("close_others", opts.CloseOthers),
		slog.Duration("duration", opts.Duration),
	)

	return a, nil
}

// Activate is the trigger entry point: "the user activated pane index".
// It consults the state machine to pick the direction, applies the
// close-others policy, and dispatches the transition. Activating a pane
// whose animation is in flight is a silent no-op.
func (a *Accordion) Activate(index int) error {
	if a.destroyed {
		return apperrors.ErrDestroyed
	}
	pane, err := a.pane(index)
	if err != nil {
		return err
	}
	if pane.Running {
		a.logger.Debug("activation ignored, pane busy", slog.Int("index", index))
		return nil
	}

	next := Next(pane.State)

	// Close-others policy: collapsing the previously active pane happens
	// alongside the activation, on its own animation timeline. Its state
	// machine advances in lockstep inside Collapse.
	if next == StateOpen && a.opts.CloseOthers {
		if cur := a.current; cur != nil && cur != pane && cur.Open && !cur.Running {
			if err := a.Collapse(cur.Index); err != nil {
				a.logger.Warn("close-others collapse failed",
					slog.Int("index", cur.Index),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	if next == StateOpen {
		err = a.Expand(index)
	} else {
		err = a.Collapse(index)
	}
	if err != nil {
		return err
	}

	// The most recently interacted pane becomes current, whether it ended
	// open or closed.
	a.current = pane
	return nil
}

// Expand animates pane index from zero to its measured content height.
// Preconditions: the index is valid and the pane is not mid-transition (a
// running pane makes this a no-op). On a measurement failure the pane's
// state is fully rolled back and no events are emitted.
func (a *Accordion) Expand(index int) error {
	if a.destroyed {
		return apperrors.ErrDestroyed
	}
	pane, err := a.pane(index)
	if err != nil {
		return err
	}
	if pane.Running {
		return nil
	}

	prevOpen, prevState := pane.Open, pane.State
	pane.Running = true
	pane.Open = true
	pane.State = StateOpen

	end, err := a.measurer.ContentHeight(index)
	if err != nil {
		pane.Running = false
		pane.Open = prevOpen
		pane.State = prevState
		return apperrors.Measurement(index, err)
	}
	pane.Height = end

	a.sync.SetExpanded(index, true)
	a.emit(EventOpen, pane)

	a.animator.Animate(0, end, a.opts.Duration, a.opts.Easing,
		func(h float32) { a.sync.SetHeight(index, h) },
		func() {
			if a.destroyed {
				return
			}
			a.sync.ClearHeight(index)
			pane.Running = false
			a.emit(EventOpened, pane)
		},
	)
	return nil
}

// Collapse is the mirror of Expand: it animates from the pane's currently
// rendered height down to zero.
func (a *Accordion) Collapse(index int) error {
	if a.destroyed {
		return apperrors.ErrDestroyed
	}
	pane, err := a.pane(index)
	if err != nil {
		return err
	}
	if pane.Running {
		return nil
	}

	prevOpen, prevState := pane.Open, pane.State
	pane.Running = true
	pane.Open = false
	pane.State = StateClosed

	start, err := a.measurer.CurrentHeight(index)
	if err != nil {
		pane.Running = false
		pane.Open = prevOpen
		pane.State = prevState
		return apperrors.Measurement(index, err)
	}
	pane.Height = start

	a.sync.SetExpanded(index, false)
	a.emit(EventClose, pane)

	a.animator.Animate(start, 0, a.opts.Duration, a.opts.Easing,
		func(h float32) { a.sync.SetHeight(index, h) },
		func() {
			if a.destroyed {
				return
			}
			a.sync.ClearHeight(index)
			pane.Running = false
			a.emit(EventClosed, pane)
		},
	)
	return nil
}

// On registers a lifecycle event handler. The name events.Wildcard receives
// every event.
func (a *Accordion) On(event string, fn Handler) events.Subscription {
	return a.bus.On(event, fn)
}

// Off removes every handler registered for the named event; events.Wildcard
// clears all handlers.
func (a *Accordion) Off(event string) {
	a.bus.OffAll(event)
}

// Unsubscribe removes a single handler by its subscription.
func (a *Accordion) Unsubscribe(sub events.Subscription) {
	a.bus.Off(sub)
}

// Destroy tears the accordion down: transient height overrides are cleared
// and all handlers are dropped, so no further events are observable. Late
// animation completions after Destroy are ignored. Subsequent operations
// return ErrDestroyed.
func (a *Accordion) Destroy() {
	if a.destroyed {
		return
	}
	a.destroyed = true
	for _, p := range a.panes {
		a.sync.ClearHeight(p.Index)
	}
	a.bus.OffAll(events.Wildcard)
	a.current = nil
	a.logger.Debug("accordion destroyed")
}

// Pane returns a snapshot of the pane at index.
func (a *Accordion) Pane(index int) (Pane, error) {
	p, err := a.pane(index)
	if err != nil {
		return Pane{}, err
	}
	return *p, nil
}

// Panes returns a snapshot of the whole registry in order.
func (a *Accordion) Panes() []Pane {
	out := make([]Pane, len(a.panes))
	for i, p := range a.panes {
		out[i] = *p
	}
	return out
}

// Current returns a snapshot of the most recently activated pane, or nil if
// there has been no interaction and no initial active pane.
func (a *Accordion) Current() *Pane {
	if a.current == nil {
		return nil
	}
	snapshot := *a.current
	return &snapshot
}

// Len reports the number of panes in the registry.
func (a *Accordion) Len() int {
	return len(a.panes)
}

func (a *Accordion) pane(index int) (*Pane, error) {
	if index < 0 || index >= len(a.panes) {
		return nil, apperrors.OutOfRange(index)
	}
	return a.panes[index], nil
}

func (a *Accordion) emit(event string, pane *Pane) {
	a.logger.Debug("pane event",
		slog.String("event", event),
		slog.Int("index", pane.Index),
	)
	a.bus.Emit(event, Payload{Pane: *pane, Index: pane.Index, Panes: a.Panes()})
}
