package anim

import (
	"time"

	"fyne.io/fyne/v2"
)

// FyneAnimator runs transitions on the Fyne animation driver, so apply and
// done are delivered on the main event loop alongside all other UI work.
type FyneAnimator struct{}

// NewFyneAnimator creates an animator backed by fyne.Animation.
func NewFyneAnimator() *FyneAnimator {
	return &FyneAnimator{}
}

// Animate interpolates from start to end over duration. The easing is applied
// here rather than through the Animation.Curve so that all animators share the
// same easing contract; the driver curve stays linear.
func (FyneAnimator) Animate(start, end float32, duration time.Duration, easing Easing, apply func(float32), done func()) {
	if easing == nil {
		easing = QuadEaseInOut
	}
	if duration <= 0 {
		apply(end)
		done()
		return
	}

	finished := false
	animation := fyne.NewAnimation(duration, func(progress float32) {
		elapsed := float64(progress) * float64(duration)
		apply(float32(easing(elapsed, float64(start), float64(end-start), float64(duration))))

		// The driver guarantees a final tick at progress 1.0.
		if progress >= 1 && !finished {
			finished = true
			done()
		}
	})
	animation.Curve = fyne.AnimationLinear
	animation.Start()
}
