// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Buffer holds decoded PCM audio in planar layout: one slice per channel,
// all of the same length. Samples are nominally in [-1, 1] but may exceed
// that range after mixing or gain; clipping happens only when encoding.
type Buffer struct {
	SampleRate int
	Data       [][]float32
}

// Channels returns the number of channels.
func (b *Buffer) Channels() int { return len(b.Data) }

// Len returns the number of frames (samples per channel).
func (b *Buffer) Len() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration returns the length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}
	return float64(b.Len()) / float64(b.SampleRate)
}

// Channel returns the samples of channel c.
func (b *Buffer) Channel(c int) []float32 { return b.Data[c] }

// Validate checks that the buffer has a positive rate, at least one channel
// and equally long channels.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, b.SampleRate)
	}
	if len(b.Data) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidBuffer)
	}

	n := len(b.Data[0])
	for c, ch := range b.Data {
		if len(ch) != n {
			return fmt.Errorf("%w: channel %d has %d frames, want %d", ErrInvalidBuffer, c, len(ch), n)
		}
	}

	return nil
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{
		SampleRate: b.SampleRate,
		Data:       make([][]float32, len(b.Data)),
	}
	for c, ch := range b.Data {
		out.Data[c] = make([]float32, len(ch))
		copy(out.Data[c], ch)
	}
	return out
}

func validateAll(bufs []*Buffer) error {
	if len(bufs) == 0 {
		return ErrNoBuffers
	}
	for i, b := range bufs {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("buffer %d: %w", i, err)
		}
	}
	return nil
}
