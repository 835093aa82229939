package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasings_Endpoints(t *testing.T) {
	tests := []struct {
		name string
		fn   Easing
	}{
		{"linear", Linear},
		{"quad", QuadEaseInOut},
		{"cubic", CubicEaseInOut},
		{"quad-out", QuadEaseOut},
	}

	const (
		b = 0.0
		c = 100.0
		d = 300.0
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, b, tt.fn(0, b, c, d), 1e-9)
			assert.InDelta(t, b+c, tt.fn(d, b, c, d), 1e-9)
		})
	}
}

func TestEasings_Midpoint(t *testing.T) {
	// The symmetric curves all cross the midpoint of the range halfway
	// through; linear trivially so.
	for _, fn := range []Easing{Linear, QuadEaseInOut, CubicEaseInOut} {
		assert.InDelta(t, 50.0, fn(150, 0, 100, 300), 1e-9)
	}

	// Ease-out has already covered more than half the range at halftime.
	assert.Greater(t, QuadEaseOut(150, 0, 100, 300), 50.0)
}

func TestEasings_NonZeroStart(t *testing.T) {
	assert.InDelta(t, 20.0, Linear(0, 20, 80, 300), 1e-9)
	assert.InDelta(t, 100.0, Linear(300, 20, 80, 300), 1e-9)
	assert.InDelta(t, 100.0, QuadEaseInOut(300, 20, 80, 300), 1e-9)
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		fn, ok := ByName(name)
		require.True(t, ok, name)
		require.NotNil(t, fn, name)
	}

	fn, ok := ByName("bounce")
	assert.False(t, ok)
	assert.Nil(t, fn)
}
