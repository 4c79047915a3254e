// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audmix/audio"
)

// mockStream hands out prepared frames, then io.EOF or err.
type mockStream struct {
	frames []*frame.Frame
	err    error
}

func (m *mockStream) ParseNext() (*frame.Frame, error) {
	if len(m.frames) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}
	f := m.frames[0]
	m.frames = m.frames[1:]
	return f, nil
}

// newFrame builds a decoded frame from per-channel samples.
func newFrame(channels ...[]int32) *frame.Frame {
	f := &frame.Frame{}
	f.BlockSize = uint16(len(channels[0]))
	for _, ch := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: ch})
	}
	return f
}

func newTestSource(channels, bits int, frames ...*frame.Frame) *source {
	total := 0
	for _, f := range frames {
		total += int(f.BlockSize)
	}
	return &source{
		stream:     &mockStream{frames: frames},
		sampleRate: 44100,
		channels:   channels,
		frames:     total,
		scale:      float32(uint64(1) << (bits - 1)),
	}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not FLAC data")},
		{"empty", []byte{}},
		{"magic only", []byte("fLaC")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(2, 16, newFrame([]int32{1, 2}, []int32{3, 4}))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", src.Frames())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples_Interleaves(t *testing.T) {
	t.Parallel()

	src := newTestSource(2, 16,
		newFrame([]int32{16384, 0}, []int32{-16384, -32768}),
	)

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float32{0.5, -0.5, 0, -1}
	for i, w := range want {
		if dst[i] != w {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], w)
		}
	}
}

func TestSource_ReadSamples_SpansFrames(t *testing.T) {
	t.Parallel()

	src := newTestSource(1, 8,
		newFrame([]int32{1, 2, 3}),
		newFrame([]int32{4, 5}),
		newFrame([]int32{6}),
	)

	dst := make([]float32, 2)
	var got []float32
	for {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != 6 {
		t.Fatalf("read %d samples, want 6", len(got))
	}
	for i, v := range got {
		if want := float32(i+1) / 128; v != want {
			t.Errorf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestSource_ReadSamples_ShortDestination(t *testing.T) {
	t.Parallel()

	src := newTestSource(2, 16, newFrame([]int32{1}, []int32{2}))

	n, err := src.ReadSamples(make([]float32, 1))
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(1 slot) = %d, %v, want 0, nil", n, err)
	}
}

func TestSource_ReadSamples_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad frame")

	tests := []struct {
		name string
		src  *source
		want error
	}{
		{
			name: "parse error",
			src: &source{
				stream:   &mockStream{err: boom},
				channels: 1,
				scale:    32768,
			},
			want: boom,
		},
		{
			name: "channel mismatch",
			src:  newTestSource(2, 16, newFrame([]int32{1, 2})),
			want: ErrChannelMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.src.ReadSamples(make([]float32, 8))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadSamples() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSource_ReadBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(2, 24,
		newFrame([]int32{4194304, 0}, []int32{0, -4194304}),
		newFrame([]int32{-8388608}, []int32{8388607}),
	)

	buf, err := audio.ReadBuffer(src)
	if err != nil {
		t.Fatalf("ReadBuffer() error = %v", err)
	}
	if buf.Len() != 3 || buf.Channels() != 2 {
		t.Fatalf("got %d x %d, want 2 x 3", buf.Channels(), buf.Len())
	}

	wantL := []float32{0.5, 0, -1}
	for i, w := range wantL {
		if buf.Data[0][i] != w {
			t.Errorf("left[%d] = %v, want %v", i, buf.Data[0][i], w)
		}
	}
	if buf.Data[1][1] != -0.5 {
		t.Errorf("right[1] = %v, want -0.5", buf.Data[1][1])
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	left := make([]int32, 4096)
	right := make([]int32, 4096)
	for i := range left {
		left[i] = int32(i)
		right[i] = -int32(i)
	}
	f := newFrame(left, right)
	dst := make([]float32, 1024)

	b.ReportAllocs()
	for b.Loop() {
		src := newTestSource(2, 16, f, f, f, f)
		for {
			_, err := src.ReadSamples(dst)
			if err != nil {
				break
			}
		}
	}
}
