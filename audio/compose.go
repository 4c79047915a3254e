// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// The composers below copy only channels 0 and 1 where noted: every source
// reaching them has been decoded and upmixed to at least stereo. Inputs with
// differing sample rates are copied index for index; nothing is resampled.

// Effect is a short sound overlaid onto a backing track.
type Effect struct {
	Buffer *Buffer
	// Duration in seconds of the effect's own samples to use.
	Duration float64
	// StartTime in seconds into the backing track.
	StartTime float64
}

// Note is one step of a note sequence.
type Note struct {
	Buffer *Buffer
	// Duration in seconds.
	Duration float64
}

func maxShape(bufs []*Buffer) (channels, rate int) {
	for _, b := range bufs {
		channels = max(channels, b.Channels())
		rate = max(rate, b.SampleRate)
	}
	return channels, rate
}

func requireStereo(b *Buffer, what string) error {
	if b.Channels() < 2 {
		return fmt.Errorf("%w: %s has %d channels, need at least 2", ErrInvalidChannelCount, what, b.Channels())
	}
	return nil
}

func checkDuration(d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidArgument, d)
	}
	return nil
}

// Concat joins bufs end to end. The result has the largest channel count and
// sample rate of the inputs and the sum of their lengths; channels 0 and 1 of
// each input are copied in order.
func Concat(bufs ...*Buffer) (*Buffer, error) {
	if err := validateAll(bufs); err != nil {
		return nil, err
	}

	total := 0
	for i, b := range bufs {
		if err := requireStereo(b, fmt.Sprintf("buffer %d", i)); err != nil {
			return nil, err
		}
		total += b.Len()
	}

	channels, rate := maxShape(bufs)
	out, err := NewBuffer(channels, total, rate)
	if err != nil {
		return nil, err
	}

	offset := 0
	for _, b := range bufs {
		copy(out.Data[0][offset:], b.Data[0])
		copy(out.Data[1][offset:], b.Data[1])
		offset += b.Len()
	}

	return out, nil
}

// Merge mixes bufs down by summing them channel by channel from frame 0.
// The length is the longest input duration measured at the first input's
// sample rate.
func Merge(bufs ...*Buffer) (*Buffer, error) {
	if err := validateAll(bufs); err != nil {
		return nil, err
	}

	longest := 0.0
	for _, b := range bufs {
		longest = math.Max(longest, b.Duration())
	}
	frames := int(math.Round(longest * float64(bufs[0].SampleRate)))

	channels, rate := maxShape(bufs)
	out, err := NewBuffer(channels, frames, rate)
	if err != nil {
		return nil, err
	}

	for _, b := range bufs {
		for c, in := range b.Data {
			dst := out.Data[c]
			n := min(len(in), len(dst))
			for i := range n {
				dst[i] += in[i]
			}
		}
	}

	return out, nil
}

// Slice returns floor(SampleRate*duration) frames taken from the start of b,
// written at frame offset of the result. Whatever does not fit after offset
// is dropped and uncovered frames stay silent.
func Slice(b *Buffer, offset int, duration float64) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := requireStereo(b, "source"); err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset %d", ErrInvalidArgument, offset)
	}
	if err := checkDuration(duration); err != nil {
		return nil, err
	}

	length := int(math.Floor(float64(b.SampleRate) * duration))
	out, err := NewBuffer(b.Channels(), length, b.SampleRate)
	if err != nil {
		return nil, err
	}

	if offset < length {
		for c := range 2 {
			src := b.Data[c][:min(length, b.Len())]
			copy(out.Data[c][offset:], src)
		}
	}

	return out, nil
}

// InsertEffects overlays effects onto a copy of backing. Each effect is cut to
// its Duration and summed into every channel both buffers have, starting at
// round(StartTime*backing.SampleRate). Samples falling outside the backing
// track are dropped.
func InsertEffects(backing *Buffer, effects []Effect) (*Buffer, error) {
	if err := backing.Validate(); err != nil {
		return nil, fmt.Errorf("backing: %w", err)
	}

	for i, e := range effects {
		if err := e.Buffer.Validate(); err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		if err := checkDuration(e.Duration); err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		if math.IsNaN(e.StartTime) || math.IsInf(e.StartTime, 0) {
			return nil, fmt.Errorf("effect %d: %w: start time %v", i, ErrInvalidArgument, e.StartTime)
		}
	}

	out := backing.Clone()
	total := out.Len()

	for _, e := range effects {
		length := int(math.Floor(float64(e.Buffer.SampleRate) * e.Duration))
		length = min(length, e.Buffer.Len())
		offset := int(math.Round(e.StartTime * float64(backing.SampleRate)))

		// Clip the effect to the part that lands inside [0, total).
		from := max(0, -offset)
		to := min(length, total-offset)

		channels := min(out.Channels(), e.Buffer.Channels())
		for c := range channels {
			dst := out.Data[c]
			src := e.Buffer.Data[c]
			for i := from; i < to; i++ {
				dst[i+offset] += src[i]
			}
		}
	}

	return out, nil
}

// MergeNotes lays notes end to end into a stereo buffer at sampleRate. Each
// note contributes floor(Duration*sampleRate) frames of its channels 0 and 1;
// a note buffer shorter than that leaves the remainder silent.
func MergeNotes(sampleRate int, notes []Note) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidArgument, sampleRate)
	}

	totalTime := 0.0
	for i, n := range notes {
		if err := n.Buffer.Validate(); err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		if err := requireStereo(n.Buffer, fmt.Sprintf("note %d", i)); err != nil {
			return nil, err
		}
		if err := checkDuration(n.Duration); err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		totalTime += n.Duration
	}

	rate := float64(sampleRate)
	frames := int(math.Ceil(rate * totalTime))
	out, err := NewBuffer(2, frames, sampleRate)
	if err != nil {
		return nil, err
	}

	offset := 0
	for _, n := range notes {
		copyLen := int(math.Floor(n.Duration * rate))
		if offset < frames {
			for c := range 2 {
				src := n.Buffer.Data[c][:min(copyLen, n.Buffer.Len())]
				copy(out.Data[c][offset:], src)
			}
		}
		offset += copyLen
	}

	return out, nil
}
