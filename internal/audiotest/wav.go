// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// Audio format tags used in the fmt chunk.
const (
	FormatPCM   = 1
	FormatFloat = 3
)

// WAV builds a canonical RIFF/WAVE file around raw little-endian PCM data.
// No validation is done so that malformed fixtures can be produced too.
func WAV(format, sampleRate, channels, bits int, data []byte) []byte {
	buf := new(bytes.Buffer)

	blockAlign := channels * bits / 8

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(format))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bits))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// WAV16 builds a 16-bit PCM WAV file from interleaved samples.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[2*i:], uint16(s))
	}
	return WAV(FormatPCM, sampleRate, channels, 16, data)
}
