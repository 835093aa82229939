package anim

import "time"

// defaultFrameInterval targets roughly 60 frames per second.
const defaultFrameInterval = 16 * time.Millisecond

// TickerAnimator drives an interpolation with a time.Ticker. Frames are
// handed to a caller-supplied scheduler so they can be marshalled onto the
// caller's event loop; with a nil scheduler frames run inline on the ticker
// goroutine, which is only safe for headless use.
type TickerAnimator struct {
	interval time.Duration
	schedule func(func())
}

// NewTickerAnimator creates an animator that emits a frame every interval.
// A non-positive interval falls back to ~60fps.
func NewTickerAnimator(interval time.Duration, schedule func(func())) *TickerAnimator {
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	if schedule == nil {
		schedule = func(fn func()) { fn() }
	}
	return &TickerAnimator{interval: interval, schedule: schedule}
}

// Animate produces intermediate values from start to end over duration using
// the given easing, calling apply for each frame and done exactly once after
// the final frame. A non-positive duration completes immediately.
func (a *TickerAnimator) Animate(start, end float32, duration time.Duration, easing Easing, apply func(float32), done func()) {
	if easing == nil {
		easing = QuadEaseInOut
	}
	if duration <= 0 {
		a.schedule(func() {
			apply(end)
			done()
		})
		return
	}

	go func() {
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		begun := time.Now()
		for now := range ticker.C {
			elapsed := now.Sub(begun)
			if elapsed >= duration {
				a.schedule(func() {
					apply(end)
					done()
				})
				return
			}
			value := easing(float64(elapsed), float64(start), float64(end-start), float64(duration))
			a.schedule(func() { apply(float32(value)) })
		}
	}()
}
