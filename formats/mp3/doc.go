// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadBuffer(source)
//
// go-mp3 always produces stereo output, so mono files come out with both
// channels equal. Samples are float32 in [-1.0, 1.0).
//
// When the input is an io.Seeker the decoder knows the stream length up
// front and reports it through audio.FrameCounter; otherwise Frames
// returns 0 and buffers grow while reading.
package mp3
