// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestQuantizeInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16383},   // 16383.5 truncated
		{name: "half negative", input: -0.5, want: -16384}, // exact with 32768
		{name: "quarter positive", input: 0.25, want: 8191},
		{name: "quarter negative", input: -0.25, want: -8192},
		{name: "small positive", input: 0.001, want: 32},
		{name: "small negative", input: -0.001, want: -32},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp over min", input: -1.5, want: math.MinInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: math.MinInt16},
		{name: "positive infinity", input: float32(math.Inf(1)), want: math.MaxInt16},
		{name: "negative infinity", input: float32(math.Inf(-1)), want: math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := QuantizeInt16(tt.input)
			if got != tt.want {
				t.Errorf("QuantizeInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestQuantizeInt16Truncates checks that fractional results round toward zero
// on both sides of the scale.
func TestQuantizeInt16Truncates(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{0.3, 0.7, 0.99, -0.3, -0.7, -0.99} {
		var want int16
		if x < 0 {
			want = int16(math.Trunc(float64(x) * 32768))
		} else {
			want = int16(math.Trunc(float64(x) * 32767))
		}

		if got := QuantizeInt16(x); got != want {
			t.Errorf("QuantizeInt16(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestQuantizeInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := QuantizeInt16(-1.0)

	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := QuantizeInt16(float32(f))
		if curr < prev {
			t.Errorf("QuantizeInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func BenchmarkQuantizeInt16(b *testing.B) {
	samples := make([]float32, 8000)
	out := make([]int16, 8000)

	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range samples {
			out[j] = QuantizeInt16(samples[j])
		}
	}
}

func TestQuantizeInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = QuantizeInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("QuantizeInt16 allocated %v times, want 0", allocs)
	}
}
