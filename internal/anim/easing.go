package anim

// Easing maps elapsed time within a transition to an interpolated value.
// The signature follows the classic tweening convention: t is the elapsed
// time, b the start value, c the total change, and d the full duration.
// An easing must satisfy f(0,b,c,d) == b and f(d,b,c,d) == b+c.
type Easing func(t, b, c, d float64) float64

// Linear interpolates at constant speed.
func Linear(t, b, c, d float64) float64 {
	return c*t/d + b
}

// QuadEaseInOut accelerates through the first half of the transition and
// decelerates through the second. This is the default curve.
func QuadEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}

// CubicEaseInOut is a steeper symmetric curve than QuadEaseInOut.
func CubicEaseInOut(t, b, c, d float64) float64 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t*t + b
	}
	t -= 2
	return c/2*(t*t*t+2) + b
}

// QuadEaseOut decelerates over the whole transition.
func QuadEaseOut(t, b, c, d float64) float64 {
	t /= d
	return -c*t*(t-2) + b
}

// ByName resolves an easing from its settings/profile name.
// Recognized names: "linear", "quad", "cubic", "quad-out".
func ByName(name string) (Easing, bool) {
	switch name {
	case "linear":
		return Linear, true
	case "quad":
		return QuadEaseInOut, true
	case "cubic":
		return CubicEaseInOut, true
	case "quad-out":
		return QuadEaseOut, true
	}
	return nil, false
}

// Names lists the easing names accepted by ByName, in menu order.
func Names() []string {
	return []string{"quad", "cubic", "quad-out", "linear"}
}
