package synth

import (
	"math"
	"testing"
	"time"
)

func TestInterpolateUV(t *testing.T) {
	sunrise := time.Date(2026, 6, 1, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

	t.Run("before sunrise", func(t *testing.T) {
		if got := InterpolateUV(8, sunrise, sunset, sunrise.Add(-time.Minute)); got != nil {
			t.Errorf("InterpolateUV before sunrise = %f, want nil", *got)
		}
	})

	t.Run("after sunset", func(t *testing.T) {
		if got := InterpolateUV(8, sunrise, sunset, sunset.Add(time.Minute)); got != nil {
			t.Errorf("InterpolateUV after sunset = %f, want nil", *got)
		}
	})

	t.Run("solar noon reaches the maximum", func(t *testing.T) {
		got := InterpolateUV(8, sunrise, sunset, sunrise.Add(6*time.Hour))
		if got == nil || math.Abs(*got-8) > 1e-9 {
			t.Errorf("InterpolateUV at midpoint = %v, want 8", got)
		}
	})

	t.Run("sunrise itself is zero", func(t *testing.T) {
		got := InterpolateUV(8, sunrise, sunset, sunrise)
		if got == nil || math.Abs(*got) > 1e-9 {
			t.Errorf("InterpolateUV at sunrise = %v, want 0", got)
		}
	})

	t.Run("quarter day follows the half sine", func(t *testing.T) {
		got := InterpolateUV(8, sunrise, sunset, sunrise.Add(3*time.Hour))
		want := 8 * math.Sin(math.Pi/4)
		if got == nil || math.Abs(*got-want) > 1e-9 {
			t.Errorf("InterpolateUV at quarter day = %v, want %f", got, want)
		}
	})

	t.Run("degenerate zero-length day", func(t *testing.T) {
		if got := InterpolateUV(8, sunrise, sunrise, sunrise); got != nil {
			t.Errorf("InterpolateUV on zero-length day = %f, want nil", *got)
		}
	})
}
