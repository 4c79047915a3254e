// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"sync"
)

// DefaultSampleRate is the rate of the default Context.
const DefaultSampleRate = 44100

// Context allocates buffers and carries the ambient sample rate used by
// operations that do not inherit one from a source buffer.
type Context struct {
	SampleRate int
}

var (
	defaultCtx     *Context
	defaultCtxOnce sync.Once
)

// DefaultContext returns the process-wide Context, creating it on first use.
func DefaultContext() *Context {
	defaultCtxOnce.Do(func() {
		defaultCtx = &Context{SampleRate: DefaultSampleRate}
	})
	return defaultCtx
}

// NewContext returns a Context with the given ambient sample rate.
func NewContext(sampleRate int) (*Context, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidArgument, sampleRate)
	}
	return &Context{SampleRate: sampleRate}, nil
}

// NewBuffer allocates a zeroed buffer.
func (c *Context) NewBuffer(channels, frames, sampleRate int) (*Buffer, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidChannelCount, channels)
	}
	if frames < 0 {
		return nil, fmt.Errorf("%w: %d frames", ErrInvalidArgument, frames)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidArgument, sampleRate)
	}

	// One backing array keeps the channels contiguous.
	backing := make([]float32, channels*frames)
	data := make([][]float32, channels)
	for ch := range channels {
		data[ch] = backing[ch*frames : (ch+1)*frames : (ch+1)*frames]
	}

	return &Buffer{SampleRate: sampleRate, Data: data}, nil
}

// NewBuffer allocates a zeroed buffer through the default Context.
func NewBuffer(channels, frames, sampleRate int) (*Buffer, error) {
	return DefaultContext().NewBuffer(channels, frames, sampleRate)
}
