// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

const (
	defaultReadSize = 4096

	// Mirrors bufio: give up on sources that keep returning nothing.
	maxConsecutiveEmptyReads = 100
)

// ReadBuffer drains src into a planar Buffer. The source is not closed.
func ReadBuffer(src Source) (*Buffer, error) {
	channels := src.Channels()
	rate := src.SampleRate()
	if channels < 1 {
		return nil, fmt.Errorf("%w: source reports %d channels", ErrInvalidChannelCount, channels)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: source reports sample rate %d", ErrInvalidArgument, rate)
	}

	capacity := 0
	if fc, ok := src.(FrameCounter); ok {
		capacity = fc.Frames()
	}

	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, 0, capacity)
	}

	// Read whole frames only; a trailing partial frame is carried over.
	size := src.BufSize()
	if size < defaultReadSize {
		size = defaultReadSize
	}
	size -= size % channels
	buf := make([]float32, size)
	pending := 0
	empty := 0

	for {
		got, err := src.ReadSamples(buf[pending:])
		n := pending + got

		frames := n / channels
		for f := range frames {
			base := f * channels
			for c := range channels {
				data[c] = append(data[c], buf[base+c])
			}
		}

		pending = n - frames*channels
		copy(buf, buf[frames*channels:n])

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if got == 0 {
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return nil, fmt.Errorf("%w", io.ErrNoProgress)
			}
			continue
		}
		empty = 0
	}

	return &Buffer{SampleRate: rate, Data: data}, nil
}

// DecodeBuffer decodes r with dec, drains the resulting source into a Buffer
// and closes it. Mono results are upmixed to stereo. Every failure is wrapped
// in ErrDecode.
func DecodeBuffer(dec Decoder, r io.Reader) (*Buffer, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	b, err := ReadBuffer(src)
	closeErr := src.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, closeErr)
	}

	if b.Channels() == 1 {
		return Upmix(b)
	}
	return b, nil
}
