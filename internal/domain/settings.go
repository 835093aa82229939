package domain

import "time"

// Settings are the persisted user preferences for the expander demo.
// Open/closed pane state is deliberately not part of this type; only
// behavior preferences survive a restart.
type Settings struct {
	DurationMS  int    `json:"durationMs"`
	Easing      string `json:"easing"`
	CloseOthers bool   `json:"closeOthers"`
	Theme       string `json:"theme,omitempty"` // "system", "light" or "dark"
}

// DefaultSettings returns the documented defaults: 300ms quadratic
// ease-in-out, no exclusivity.
func DefaultSettings() Settings {
	return Settings{
		DurationMS: 300,
		Easing:     "quad",
	}
}

// Duration converts the stored millisecond value, falling back to the
// default when unset or invalid.
func (s Settings) Duration() time.Duration {
	if s.DurationMS <= 0 {
		return time.Duration(DefaultSettings().DurationMS) * time.Millisecond
	}
	return time.Duration(s.DurationMS) * time.Millisecond
}
