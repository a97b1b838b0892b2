package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBesselI0(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"zero", 0, 1},
		{"half", 0.5, 1.063483344},
		{"one", 1, 1.266065848},
		{"three", 3, 4.880792565},
		{"split point", 3.75, 9.118945994},
		{"five", 5, 27.23987183},
		{"ten", 10, 2815.716628},
		{"negative", -1, 1.266065848},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, BesselI0(tt.x), 1e-6)
		})
	}
}

func TestBesselI0_EvenAndIncreasing(t *testing.T) {
	prev := BesselI0(0)
	for x := 0.25; x <= 12; x += 0.25 {
		got := BesselI0(x)
		assert.InDelta(t, got, BesselI0(-x), 1e-12*got, "x=%v", x)
		assert.Greater(t, got, prev, "x=%v", x)
		prev = got
	}
}
