package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/magicspon/spon-expander/internal/accordion"
	"github.com/magicspon/spon-expander/internal/anim"
	"github.com/magicspon/spon-expander/internal/domain"
	apperrors "github.com/magicspon/spon-expander/internal/errors"
	"github.com/magicspon/spon-expander/internal/events"
	"github.com/magicspon/spon-expander/internal/model"
)

// Compile-time collaborator checks.
var (
	_ accordion.Measurer      = (*Group)(nil)
	_ accordion.AttributeSync = (*Group)(nil)
)

// Group is the expander widget: a column of trigger buttons, each followed
// by a collapsible content panel. It is the presentation half of the
// accordion — it discovers nothing and decides nothing, it only renders what
// the core tells it and forwards trigger activations back.
type Group struct {
	widget.BaseWidget

	acc      *accordion.Accordion
	state    *model.GroupState
	triggers []*widget.Button
	panels   []*panel
	box      *fyne.Container
	logger   *slog.Logger
}

// NewGroup builds an expander over the given sections. A nil animator falls
// back to the Fyne animation driver.
func NewGroup(sections []domain.Section, opts accordion.Options, animator accordion.Animator, logger *slog.Logger) (*Group, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("expander needs at least one section")
	}
	if animator == nil {
		animator = anim.NewFyneAnimator()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := &Group{
		state:  model.NewGroupState(len(sections)),
		logger: logger,
	}

	configs := make([]accordion.PaneConfig, len(sections))
	objects := make([]fyne.CanvasObject, 0, len(sections)*2)

	for i, section := range sections {
		configs[i] = accordion.PaneConfig{InitialOpen: section.Open}

		body := widget.NewLabel(section.Body)
		body.Wrapping = fyne.TextWrapWord
		pnl := newPanel(body)

		index := i
		btn := widget.NewButtonWithIcon(section.Title, theme.MenuDropDownIcon(), func() {
			g.handleActivate(index)
		})
		btn.Alignment = widget.ButtonAlignLeading

		g.triggers = append(g.triggers, btn)
		g.panels = append(g.panels, pnl)
		objects = append(objects, btn, pnl)
	}

	g.box = container.NewVBox(objects...)
	g.ExtendBaseWidget(g)

	acc, err := accordion.New(configs, accordion.Deps{
		Animator: animator,
		Measurer: g,
		Sync:     g,
	}, opts, logger)
	if err != nil {
		return nil, err
	}
	g.acc = acc

	// Mirror every lifecycle event into the reactive state for status
	// displays.
	acc.On(events.Wildcard, func(event string, p accordion.Payload) {
		g.state.SetLastEvent(event, p.Index)
	})

	return g, nil
}

func (g *Group) handleActivate(index int) {
	if err := g.acc.Activate(index); err != nil {
		g.logger.Warn("activation failed",
			slog.Int("index", index),
			slog.String("error", err.Error()),
		)
		g.state.SetError(apperrors.UserMessage(err))
	}
}

// Accordion exposes the underlying core for programmatic control
// (Expand/Collapse/On/Off/Destroy).
func (g *Group) Accordion() *accordion.Accordion {
	return g.acc
}

// State returns the binding-backed UI state for this group.
func (g *Group) State() *model.GroupState {
	return g.state
}

// Activate toggles the section at index as if its trigger had been tapped.
func (g *Group) Activate(index int) error {
	return g.acc.Activate(index)
}

// CollapseAll collapses every open section that is not mid-transition.
func (g *Group) CollapseAll() {
	for _, p := range g.acc.Panes() {
		if p.Open && !p.Running {
			if err := g.acc.Collapse(p.Index); err != nil {
				g.logger.Warn("collapse failed",
					slog.Int("index", p.Index),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}

// Destroy tears down the underlying accordion.
func (g *Group) Destroy() {
	g.acc.Destroy()
}

// CreateRenderer implements fyne.Widget.
func (g *Group) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.box)
}

// ContentHeight implements accordion.Measurer: the natural height of the
// section body when fully expanded.
func (g *Group) ContentHeight(index int) (float32, error) {
	if index < 0 || index >= len(g.panels) {
		return 0, fmt.Errorf("no panel at index %d", index)
	}
	h := g.panels[index].content.MinSize().Height
	if h <= 0 {
		return 0, fmt.Errorf("panel %d has no measurable content", index)
	}
	return h, nil
}

// CurrentHeight implements accordion.Measurer: the height the section body
// currently occupies.
func (g *Group) CurrentHeight(index int) (float32, error) {
	if index < 0 || index >= len(g.panels) {
		return 0, fmt.Errorf("no panel at index %d", index)
	}
	return g.panels[index].visibleHeight(), nil
}

// SetExpanded implements accordion.AttributeSync: mirrors the logical open
// state into the trigger icon, panel sizing, and the reactive model.
func (g *Group) SetExpanded(index int, open bool) {
	if index < 0 || index >= len(g.panels) {
		return
	}
	if open {
		g.triggers[index].SetIcon(theme.MenuDropUpIcon())
	} else {
		g.triggers[index].SetIcon(theme.MenuDropDownIcon())
	}
	g.panels[index].setExpanded(open)
	g.state.SetOpen(index, open)
	g.box.Refresh()
}

// SetHeight implements accordion.AttributeSync: applies one animation
// frame's transient height override.
func (g *Group) SetHeight(index int, height float32) {
	if index < 0 || index >= len(g.panels) {
		return
	}
	g.panels[index].setOverride(height)
	g.box.Refresh()
}

// ClearHeight implements accordion.AttributeSync: removes the transient
// override so the panel sizes naturally again.
func (g *Group) ClearHeight(index int) {
	if index < 0 || index >= len(g.panels) {
		return
	}
	g.panels[index].clearOverride()
	g.box.Refresh()
}
