package accordion

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicspon/spon-expander/internal/anim"
	apperrors "github.com/magicspon/spon-expander/internal/errors"
	"github.com/magicspon/spon-expander/internal/events"
)

// stubAnimation is one in-flight animation held by stubAnimator.
type stubAnimation struct {
	start, end float32
	apply      func(float32)
	done       func()
}

// stubAnimator records animations and lets tests complete them manually,
// or runs them to completion immediately when instant is set.
type stubAnimator struct {
	instant bool
	pending []*stubAnimation
	started int
}

func (s *stubAnimator) Animate(start, end float32, _ time.Duration, _ anim.Easing, apply func(float32), done func()) {
	s.started++
	if s.instant {
		apply(end)
		done()
		return
	}
	s.pending = append(s.pending, &stubAnimation{start: start, end: end, apply: apply, done: done})
}

// finish completes the oldest pending animation.
func (s *stubAnimator) finish(t *testing.T) {
	t.Helper()
	require.NotEmpty(t, s.pending, "no pending animation to finish")
	a := s.pending[0]
	s.pending = s.pending[1:]
	a.apply(a.end)
	a.done()
}

// stubMeasurer returns fixed heights and can be told to fail.
type stubMeasurer struct {
	content float32
	current float32
	fail    error
}

func (s *stubMeasurer) ContentHeight(int) (float32, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	return s.content, nil
}

func (s *stubMeasurer) CurrentHeight(int) (float32, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	return s.current, nil
}

// stubSync records attribute mutations in order.
type syncCall struct {
	op     string
	index  int
	open   bool
	height float32
}

type stubSync struct {
	calls []syncCall
}

func (s *stubSync) SetExpanded(index int, open bool) {
	s.calls = append(s.calls, syncCall{op: "expanded", index: index, open: open})
}

func (s *stubSync) SetHeight(index int, h float32) {
	s.calls = append(s.calls, syncCall{op: "height", index: index, height: h})
}

func (s *stubSync) ClearHeight(index int) {
	s.calls = append(s.calls, syncCall{op: "clear", index: index})
}

func (s *stubSync) reset() { s.calls = nil }

type fixture struct {
	acc      *Accordion
	animator *stubAnimator
	measurer *stubMeasurer
	sync     *stubSync
}

func newFixture(t *testing.T, panes []PaneConfig, opts Options) *fixture {
	t.Helper()
	f := &fixture{
		animator: &stubAnimator{},
		measurer: &stubMeasurer{content: 120, current: 120},
		sync:     &stubSync{},
	}
	acc, err := New(panes, Deps{
		Animator: f.animator,
		Measurer: f.measurer,
		Sync:     f.sync,
	}, opts, nil)
	require.NoError(t, err)
	f.acc = acc
	return f
}

func threeClosed() []PaneConfig {
	return []PaneConfig{{}, {}, {}}
}

func TestNew_RequiresPanes(t *testing.T) {
	_, err := New(nil, Deps{
		Animator: &stubAnimator{},
		Measurer: &stubMeasurer{},
		Sync:     &stubSync{},
	}, DefaultOptions(), nil)
	assert.Error(t, err)
}

func TestNew_RequiresCollaborators(t *testing.T) {
	_, err := New(threeClosed(), Deps{}, DefaultOptions(), nil)
	assert.Error(t, err)
}

func TestNew_ActiveIndexOutOfRange(t *testing.T) {
	opts := DefaultOptions()
	opts.ActiveIndex = 5
	_, err := New(threeClosed(), Deps{
		Animator: &stubAnimator{},
		Measurer: &stubMeasurer{},
		Sync:     &stubSync{},
	}, opts, nil)
	assert.ErrorIs(t, err, apperrors.ErrIndexOutOfRange)
}

func TestNew_InitialOpenWithoutEvents(t *testing.T) {
	opts := DefaultOptions()
	opts.ActiveIndex = 1

	events := 0
	f := newFixture(t, threeClosed(), opts)
	f.acc.On("*", func(string, Payload) { events++ })

	pane, err := f.acc.Pane(1)
	require.NoError(t, err)
	assert.True(t, pane.Open)
	assert.Equal(t, StateOpen, pane.State)
	assert.Zero(t, events, "initialization must not emit events")
	assert.Zero(t, f.animator.started, "initialization must not animate")

	// Attributes were synced for every pane.
	require.Len(t, f.sync.calls, 3)
	assert.True(t, f.sync.calls[1].open)
	assert.False(t, f.sync.calls[0].open)
}

func TestNew_CloseOthersKeepsOnePaneOpen(t *testing.T) {
	opts := DefaultOptions()
	opts.CloseOthers = true
	f := newFixture(t, []PaneConfig{{InitialOpen: true}, {InitialOpen: true}, {}}, opts)

	openCount := 0
	for _, p := range f.acc.Panes() {
		if p.Open {
			openCount++
		}
	}
	assert.Equal(t, 1, openCount)
	assert.True(t, f.acc.Panes()[0].Open, "first flagged pane wins")
}

func TestActivate_OpensClosedPane(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())

	var got []string
	f.acc.On("*", func(event string, p Payload) {
		got = append(got, event)
		assert.Equal(t, 0, p.Index)
		assert.Len(t, p.Panes, 3)
	})

	require.NoError(t, f.acc.Activate(0))

	pane, _ := f.acc.Pane(0)
	assert.True(t, pane.Open)
	assert.True(t, pane.Running)
	assert.Equal(t, StateOpen, pane.State)
	assert.Equal(t, []string{EventOpen}, got, "post-event waits for the animation")

	f.animator.finish(t)

	pane, _ = f.acc.Pane(0)
	assert.False(t, pane.Running)
	assert.Equal(t, []string{EventOpen, EventOpened}, got)

	cur := f.acc.Current()
	require.NotNil(t, cur)
	assert.Equal(t, 0, cur.Index)
}

func TestActivate_ClosesOpenPane(t *testing.T) {
	f := newFixture(t, []PaneConfig{{InitialOpen: true}}, DefaultOptions())

	var got []string
	f.acc.On("*", func(event string, _ Payload) { got = append(got, event) })

	require.NoError(t, f.acc.Activate(0))
	f.animator.finish(t)

	pane, _ := f.acc.Pane(0)
	assert.False(t, pane.Open)
	assert.Equal(t, StateClosed, pane.State)
	assert.Equal(t, []string{EventClose, EventClosed}, got)
}

func TestActivate_BusyPaneIsSilentNoOp(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())

	events := 0
	f.acc.On("*", func(string, Payload) { events++ })

	require.NoError(t, f.acc.Activate(0))
	require.Equal(t, 1, events) // open

	// Repeated activations while the animation is in flight do nothing.
	require.NoError(t, f.acc.Activate(0))
	require.NoError(t, f.acc.Activate(0))
	assert.Equal(t, 1, events)
	assert.Equal(t, 1, f.animator.started)

	f.animator.finish(t)
	assert.Equal(t, 2, events) // opened

	// After settling, the pane responds again.
	require.NoError(t, f.acc.Activate(0))
	assert.Equal(t, 3, events) // close
}

func TestActivate_AlternatesStates(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())
	f.animator.instant = true

	for i := 0; i < 6; i++ {
		require.NoError(t, f.acc.Activate(0))
		pane, _ := f.acc.Pane(0)
		wantOpen := i%2 == 0
		assert.Equal(t, wantOpen, pane.Open, "activation %d", i)
		assert.False(t, pane.Running)
	}
}

func TestActivate_IndexOutOfRange(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())

	events := 0
	f.acc.On("*", func(string, Payload) { events++ })

	for _, index := range []int{-1, 3, 99} {
		err := f.acc.Activate(index)
		assert.ErrorIs(t, err, apperrors.ErrIndexOutOfRange)

		var pe *apperrors.PaneError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, index, pe.Index)
	}
	assert.Zero(t, events)
	assert.Nil(t, f.acc.Current())
}

func TestActivate_CloseOthersCollapsesPrevious(t *testing.T) {
	opts := DefaultOptions()
	opts.CloseOthers = true
	f := newFixture(t, threeClosed(), opts)
	f.animator.instant = true

	var got []string
	f.acc.On("*", func(event string, p Payload) { got = append(got, event) })

	require.NoError(t, f.acc.Activate(0))
	got = nil

	require.NoError(t, f.acc.Activate(2))

	panes := f.acc.Panes()
	assert.False(t, panes[0].Open)
	assert.True(t, panes[2].Open)
	assert.Equal(t, []string{EventClose, EventClosed, EventOpen, EventOpened}, got)

	cur := f.acc.Current()
	require.NotNil(t, cur)
	assert.Equal(t, 2, cur.Index)
}

func TestActivate_CloseOthersDisabledLeavesOthersOpen(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())
	f.animator.instant = true

	require.NoError(t, f.acc.Activate(0))
	require.NoError(t, f.acc.Activate(2))

	panes := f.acc.Panes()
	assert.True(t, panes[0].Open)
	assert.True(t, panes[2].Open)
}

func TestActivate_ClosingDoesNotTouchOthers(t *testing.T) {
	opts := DefaultOptions()
	opts.CloseOthers = true
	f := newFixture(t, threeClosed(), opts)
	f.animator.instant = true

	require.NoError(t, f.acc.Activate(1))
	// Closing the current pane must not trigger the exclusivity policy.
	require.NoError(t, f.acc.Activate(1))

	for _, p := range f.acc.Panes() {
		assert.False(t, p.Open)
	}
}

func TestExpand_MeasurementFailureRollsBack(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())

	events := 0
	f.acc.On("*", func(string, Payload) { events++ })

	boom := errors.New("layout not ready")
	f.measurer.fail = boom

	err := f.acc.Activate(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMeasurement)
	assert.ErrorIs(t, err, boom)

	pane, _ := f.acc.Pane(0)
	assert.False(t, pane.Open)
	assert.False(t, pane.Running)
	assert.Equal(t, StateClosed, pane.State)
	assert.Zero(t, events, "failed transition emits no events")
	assert.Zero(t, f.animator.started)
	assert.Nil(t, f.acc.Current())

	// The pane recovers once measurement works again.
	f.measurer.fail = nil
	f.animator.instant = true
	require.NoError(t, f.acc.Activate(0))
	pane, _ = f.acc.Pane(0)
	assert.True(t, pane.Open)
	assert.Equal(t, events, 2)
}

func TestCollapse_MeasurementFailureRollsBack(t *testing.T) {
	f := newFixture(t, []PaneConfig{{InitialOpen: true}}, DefaultOptions())

	f.measurer.fail = errors.New("detached")

	err := f.acc.Collapse(0)
	assert.ErrorIs(t, err, apperrors.ErrMeasurement)

	pane, _ := f.acc.Pane(0)
	assert.True(t, pane.Open, "open state restored after rollback")
	assert.Equal(t, StateOpen, pane.State)
	assert.False(t, pane.Running)
}

func TestExpand_AttributeAndHeightOrdering(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())
	f.sync.reset()

	require.NoError(t, f.acc.Expand(0))
	f.animator.finish(t)

	// expanded first, then animated heights, then the override is cleared.
	require.NotEmpty(t, f.sync.calls)
	assert.Equal(t, "expanded", f.sync.calls[0].op)
	assert.True(t, f.sync.calls[0].open)
	assert.Equal(t, "clear", f.sync.calls[len(f.sync.calls)-1].op)

	var sawHeight bool
	for _, c := range f.sync.calls[1 : len(f.sync.calls)-1] {
		if c.op == "height" {
			sawHeight = true
		}
	}
	assert.True(t, sawHeight)
}

func TestExpand_RecordsMeasuredHeight(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())
	f.measurer.content = 240

	require.NoError(t, f.acc.Expand(1))

	pane, _ := f.acc.Pane(1)
	assert.Equal(t, float32(240), pane.Height)
}

func TestOnOff(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())
	f.animator.instant = true

	opens, all := 0, 0
	sub := f.acc.On(EventOpen, func(string, Payload) { opens++ })
	f.acc.On(events.Wildcard, func(string, Payload) { all++ })

	require.NoError(t, f.acc.Activate(0))
	assert.Equal(t, 1, opens)
	assert.Equal(t, 2, all)

	f.acc.Unsubscribe(sub)
	require.NoError(t, f.acc.Activate(1))
	assert.Equal(t, 1, opens)
	assert.Equal(t, 4, all)

	f.acc.Off(events.Wildcard)
	require.NoError(t, f.acc.Activate(2))
	assert.Equal(t, 4, all)
}

func TestDestroy(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())

	events := 0
	f.acc.On("*", func(string, Payload) { events++ })

	// Leave one animation in flight, then destroy mid-transition.
	require.NoError(t, f.acc.Activate(0))
	require.Equal(t, 1, events)

	f.acc.Destroy()
	assert.Nil(t, f.acc.Current())

	// Late completion after Destroy is ignored, no post-event.
	f.animator.finish(t)
	assert.Equal(t, 1, events)

	assert.ErrorIs(t, f.acc.Activate(1), apperrors.ErrDestroyed)
	assert.ErrorIs(t, f.acc.Expand(1), apperrors.ErrDestroyed)
	assert.ErrorIs(t, f.acc.Collapse(1), apperrors.ErrDestroyed)

	// Destroy is idempotent.
	f.acc.Destroy()
}

func TestPayload_IsSnapshot(t *testing.T) {
	f := newFixture(t, threeClosed(), DefaultOptions())
	f.animator.instant = true

	var captured Payload
	f.acc.On(EventOpened, func(_ string, p Payload) { captured = p })

	require.NoError(t, f.acc.Activate(0))
	require.NoError(t, f.acc.Activate(0)) // close it again

	// The captured payload reflects the moment of emission.
	assert.True(t, captured.Pane.Open)
	assert.True(t, captured.Panes[0].Open)

	pane, _ := f.acc.Pane(0)
	assert.False(t, pane.Open)
}
