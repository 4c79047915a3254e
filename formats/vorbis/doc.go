// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding.
//
// This package uses github.com/jfreymuth/oggvorbis, a pure Go decoder.
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadBuffer(source)
//
// The decoder keeps the channel count of the stream and emits float32
// samples directly, with no integer conversion. ReadSamples only fills
// whole frames, so a destination shorter than one frame reads nothing.
package vorbis
