// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"sync"
)

// Compressor is a peak-following dynamic range compressor with a soft knee.
//
// All parameters are dimensionless and share the scale of sample amplitude;
// they are not decibels or seconds. Inside the knee the gain ramps above 1,
// past it the gain is reduced according to Ratio.
type Compressor struct {
	Threshold float64
	Knee      float64
	Ratio     float64
	// Attack weighs the previous envelope against the current peak. At 0 the
	// envelope is simply |x| for every sample.
	Attack float64
	// Release decays the envelope after each sample.
	Release float64
	Volume  float64
}

// DefaultCompressor returns the stock settings.
func DefaultCompressor() Compressor {
	return Compressor{
		Threshold: -3,
		Knee:      40,
		Ratio:     20,
		Attack:    0,
		Release:   0.2,
		Volume:    0.9543,
	}
}

// envelopeState is the per-channel follower state.
type envelopeState struct {
	envelope    float64
	envelopeMax float64
}

// step advances the follower by one sample and returns the new state and the
// output sample.
func (c Compressor) step(st envelopeState, x float64) (envelopeState, float64) {
	st.envelope = math.Max(math.Abs(x), st.envelope*c.Attack)
	st.envelopeMax = math.Max(st.envelopeMax, st.envelope)

	g := 1.0
	if st.envelopeMax > c.Threshold {
		if st.envelope < c.Threshold+c.Knee {
			g = 1 + (st.envelope-c.Threshold)/c.Knee
		} else {
			g = 1 + (st.envelope-c.Threshold)*(1/c.Ratio-1)/c.Knee
		}
	}

	y := x * g * c.Volume
	st.envelope *= c.Release

	return st, y
}

// processChannel folds the follower over in, writing to out.
func (c Compressor) processChannel(in, out []float32) {
	var st envelopeState
	var y float64
	for i, x := range in {
		st, y = c.step(st, float64(x))
		out[i] = float32(y)
	}
}

// Process returns a compressed copy of b. Channels run concurrently; the
// samples within a channel are processed strictly in order.
func (c Compressor) Process(b *Buffer) *Buffer {
	out := &Buffer{
		SampleRate: b.SampleRate,
		Data:       make([][]float32, len(b.Data)),
	}

	var wg sync.WaitGroup
	for ch, in := range b.Data {
		out.Data[ch] = make([]float32, len(in))
		wg.Go(func() {
			c.processChannel(in, out.Data[ch])
		})
	}
	wg.Wait()

	return out
}

// Compress applies DefaultCompressor to b.
func Compress(b *Buffer) *Buffer {
	return DefaultCompressor().Process(b)
}
