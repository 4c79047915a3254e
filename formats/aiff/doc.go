// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Supported Formats
//
// Uncompressed AIFF at 8, 16, 24 or 32 bits, any channel count and any
// sample rate. AIFF-C with compression is not supported.
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadBuffer(source)
//
// Samples are normalized to float32 in [-1.0, 1.0). The decoder reads the
// whole input into memory when it is not an io.ReadSeeker.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not an AIFF file
//   - ErrUnsupportedBitDepth: sample size other than 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: missing or inconsistent COMM chunk
//
// The registry in the root package maps the "aiff" and "aif" extensions to
// this decoder.
package aiff
