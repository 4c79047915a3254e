// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding is backed by github.com/go-audio/wav and accepts integer PCM at
// 8, 16, 24 or 32 bits, in any channel count and sample rate. Encoding
// always produces the canonical 16-bit layout.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	buf, err := audio.ReadBuffer(source)
//
// Samples are returned as float32 in [-1.0, 1.0). The source also reports
// its length through audio.FrameCounter.
//
// # Encoding WAV Files
//
//	out, err := wav.EncodeBytes(buf)
//
// or, streaming to any io.Writer:
//
//	err := wav.Encode(file, buf)
//
// The output is a 44-byte header (RIFF, fmt and data chunks, all integers
// little-endian) followed by interleaved 16-bit samples. Samples are clamped
// to [-1, 1]; non-negative values are scaled by 32767 and negative values by
// 32768, truncating toward zero. The result is always
// frames*channels*2 + 44 bytes long.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: compressed, float or odd bit depth encodings
//   - ErrUnsupportedWavLayout: no data chunk
//   - ErrTooLarge: the buffer does not fit the 32-bit RIFF size fields
package wav
