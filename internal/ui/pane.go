package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// panel hosts one section's content and clamps its reported height while a
// transition is animating. With no override active it sizes naturally: full
// content height when expanded, zero when collapsed.
type panel struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	expanded bool
	override float32 // negative when no transient override is active
}

func newPanel(content fyne.CanvasObject) *panel {
	p := &panel{content: content, override: -1}
	p.ExtendBaseWidget(p)
	return p
}

func (p *panel) setExpanded(open bool) {
	p.expanded = open
	p.Refresh()
}

func (p *panel) setOverride(height float32) {
	p.override = height
	p.Refresh()
}

func (p *panel) clearOverride() {
	p.override = -1
	p.Refresh()
}

// visibleHeight is the height the panel currently wants to occupy.
func (p *panel) visibleHeight() float32 {
	switch {
	case p.override >= 0:
		return p.override
	case p.expanded:
		return p.content.MinSize().Height
	default:
		return 0
	}
}

// CreateRenderer implements fyne.Widget.
func (p *panel) CreateRenderer() fyne.WidgetRenderer {
	return &panelRenderer{panel: p}
}

type panelRenderer struct {
	panel *panel
}

func (r *panelRenderer) Layout(size fyne.Size) {
	// The content keeps its natural height; the panel's MinSize does the
	// clamping so collapsing slides the content out of the reserved space.
	r.panel.content.Resize(fyne.NewSize(size.Width, r.panel.content.MinSize().Height))
	r.panel.content.Move(fyne.NewPos(0, 0))
}

func (r *panelRenderer) MinSize() fyne.Size {
	min := r.panel.content.MinSize()
	return fyne.NewSize(min.Width, r.panel.visibleHeight())
}

func (r *panelRenderer) Refresh() {
	if r.panel.visibleHeight() <= 0 {
		r.panel.content.Hide()
	} else {
		r.panel.content.Show()
	}
	r.panel.content.Refresh()
}

func (r *panelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.panel.content}
}

func (r *panelRenderer) Destroy() {}
