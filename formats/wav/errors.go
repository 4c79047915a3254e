// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a RIFF/WAVE file.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates the file has no usable data chunk.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrOnlyPCMSupported indicates a compressed or floating point encoding,
	// or an integer bit depth other than 8, 16, 24 or 32.
	ErrOnlyPCMSupported = errors.New("only integer PCM WAV is supported")

	// ErrTooLarge indicates the encoded data would not fit in a RIFF file.
	ErrTooLarge = errors.New("audio too large for WAV")
)
