// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrDecode wraps every failure to turn source bytes into a Buffer.
	ErrDecode = errors.New("decode failed")

	// ErrInvalidChannelCount is returned when a buffer does not have the
	// channel layout an operation requires.
	ErrInvalidChannelCount = errors.New("invalid channel count")

	// ErrInvalidBuffer is returned by Validate for malformed buffers.
	ErrInvalidBuffer = errors.New("invalid buffer")

	// ErrNoBuffers is returned by composers called without input.
	ErrNoBuffers = errors.New("no buffers to compose")

	// ErrInvalidArgument reports a negative offset, a negative or NaN
	// duration, or a non-positive sample rate.
	ErrInvalidArgument = errors.New("invalid argument")
)
