// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// PanLaw is the -3 dB gain applied when one channel is spread over two.
const PanLaw = 0.7071

// Upmix spreads a mono buffer over two channels, scaling both by PanLaw.
// The input is left untouched.
func Upmix(mono *Buffer) (*Buffer, error) {
	if err := mono.Validate(); err != nil {
		return nil, err
	}
	if mono.Channels() != 1 {
		return nil, fmt.Errorf("%w: upmix needs mono input, got %d channels", ErrInvalidChannelCount, mono.Channels())
	}

	out, err := NewBuffer(2, mono.Len(), mono.SampleRate)
	if err != nil {
		return nil, err
	}

	src := mono.Data[0]
	left, right := out.Data[0], out.Data[1]
	for i, x := range src {
		v := float32(float64(x) * PanLaw)
		left[i] = v
		right[i] = v
	}

	return out, nil
}
