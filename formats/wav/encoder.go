// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// HeaderSize is the length of the canonical header written by Encode.
const HeaderSize = 44

// frames per Write call
const chunkFrames = 4096

// EncodedSize returns the number of bytes Encode writes for b.
func EncodedSize(b *audio.Buffer) int64 {
	return int64(b.Len())*int64(b.Channels())*2 + HeaderSize
}

func putHeader(header []byte, sampleRate, channels int, dataSize uint32) {
	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*2*channels))
	binary.LittleEndian.PutUint16(header[32:34], uint16(channels*2))
	binary.LittleEndian.PutUint16(header[34:36], 16)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
}

// Encode writes b to w as a 16-bit PCM WAV file with a 44-byte header and
// interleaved little-endian samples. Samples are clamped to [-1, 1] and
// quantized with utils.QuantizeInt16.
func Encode(w io.Writer, b *audio.Buffer) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}
	channels := b.Channels()
	if channels > math.MaxUint16/2 {
		return fmt.Errorf("%w: %d channels", ErrTooLarge, channels)
	}
	if int64(b.SampleRate)*int64(2*channels) > math.MaxUint32 {
		return fmt.Errorf("%w: sample rate %d", ErrTooLarge, b.SampleRate)
	}

	dataSize := EncodedSize(b) - HeaderSize
	if dataSize > math.MaxUint32-36 {
		return fmt.Errorf("%w: %d bytes of sample data", ErrTooLarge, dataSize)
	}

	header := make([]byte, HeaderSize)
	putHeader(header, b.SampleRate, channels, uint32(dataSize))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	frames := b.Len()
	if frames == 0 {
		return nil
	}

	buf := make([]byte, min(frames, chunkFrames)*channels*2)
	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)
		chunk := buf[:(end-start)*channels*2]

		pos := 0
		for i := start; i < end; i++ {
			for c := range channels {
				q := utils.QuantizeInt16(b.Data[c][i])
				binary.LittleEndian.PutUint16(chunk[pos:], uint16(q))
				pos += 2
			}
		}

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodeBytes returns the encoded WAV file for b.
func EncodeBytes(b *audio.Buffer) ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	var out bytes.Buffer
	if size := EncodedSize(b); size <= math.MaxUint32 {
		out.Grow(int(size))
	}
	if err := Encode(&out, b); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
