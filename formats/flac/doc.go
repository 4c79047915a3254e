// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio decoding.
//
// This package uses github.com/mewkiz/flac, a pure Go decoder. Frames are
// parsed one at a time as samples are requested, so memory use stays at one
// FLAC block regardless of file length.
//
//	file, _ := os.Open("audio.flac")
//	source, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadBuffer(source)
//
// Samples are scaled by 2^(bits-1) into [-1.0, 1.0) for any bit depth from
// 4 to 32. The STREAMINFO sample count is reported through
// audio.FrameCounter.
package flac
