package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTime(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 0.25, 0.25},
		{"accumulated drift", math.Nextafter(0.3, 1), 0.3},
		{"rounds up", 0.1234567, 0.123457},
		{"negative", -1.2345674, -1.234567},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundTime(tt.in))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.InDelta(t, 1.5, Clamp(2.0, -1.5, 1.5), 0)
	assert.InDelta(t, -1.5, Clamp(-9, -1.5, 1.5), 0)
	assert.InDelta(t, 0.3, Clamp(0.3, -1.5, 1.5), 0)
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(1e-9))
	assert.False(t, IsPositive(0))
	assert.False(t, IsPositive(-1))
	assert.False(t, IsPositive(math.NaN()))
	assert.False(t, IsPositive(math.Inf(1)))
	assert.True(t, IsFinite(-3))
	assert.False(t, IsFinite(math.Inf(-1)))
}
