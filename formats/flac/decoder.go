// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audmix/audio"
)

// frameParser is the subset of flac.Stream used by source, to allow testing.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

// source decodes one FLAC frame at a time and hands out its samples
// interleaved. A frame that does not fit in dst is kept for the next call.
type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	frames     int
	scale      float32

	cur *frame.Frame
	pos int // next sample index within cur
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

// Frames returns the total sample count from STREAMINFO, 0 when unknown.
func (s *source) Frames() int { return s.frames }

// Close does not close the reader handed to Decode; the caller owns it.
func (s *source) Close() error { return nil }

func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("parsing flac frame: %w", err)
	}
	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: got %d subframes, want %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}
	s.cur = f
	s.pos = 0
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n+s.channels <= len(dst) {
		if s.cur == nil || s.pos >= int(s.cur.BlockSize) {
			if err := s.next(); err != nil {
				s.cur = nil
				return n, err
			}
			continue
		}

		for c := range s.channels {
			dst[n] = float32(s.cur.Subframes[c].Samples[s.pos]) / s.scale
			n++
		}
		s.pos++
	}

	return n, nil
}

// Decoder decodes FLAC streams of any channel count and bit depth up to 32.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	bits := int(info.BitsPerSample)
	if bits < 4 || bits > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		frames:     int(info.NSamples),
		scale:      float32(uint64(1) << (bits - 1)),
	}, nil
}
