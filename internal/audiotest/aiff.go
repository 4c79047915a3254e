// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// extended80 encodes a positive integer sample rate as the 80-bit IEEE
// extended float used by the AIFF COMM chunk.
func extended80(rate int) [10]byte {
	var out [10]byte
	if rate <= 0 {
		return out
	}

	exp := bits.Len64(uint64(rate)) - 1
	binary.BigEndian.PutUint16(out[0:2], uint16(16383+exp))
	binary.BigEndian.PutUint64(out[2:10], uint64(rate)<<(63-exp))
	return out
}

// AIFF16 builds a 16-bit AIFF file from interleaved samples.
func AIFF16(sampleRate, channels int, samples []int16) []byte {
	data := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.BigEndian.PutUint16(data[2*i:], uint16(s))
	}

	frames := 0
	if channels > 0 {
		frames = len(samples) / channels
	}

	comm := new(bytes.Buffer)
	_ = binary.Write(comm, binary.BigEndian, uint16(channels))
	_ = binary.Write(comm, binary.BigEndian, uint32(frames))
	_ = binary.Write(comm, binary.BigEndian, uint16(16))
	rate := extended80(sampleRate)
	comm.Write(rate[:])

	buf := new(bytes.Buffer)
	buf.WriteString("FORM")
	_ = binary.Write(buf, binary.BigEndian, uint32(4+8+comm.Len()+8+8+len(data)))
	buf.WriteString("AIFF")

	buf.WriteString("COMM")
	_ = binary.Write(buf, binary.BigEndian, uint32(comm.Len()))
	buf.Write(comm.Bytes())

	buf.WriteString("SSND")
	_ = binary.Write(buf, binary.BigEndian, uint32(8+len(data)))
	_ = binary.Write(buf, binary.BigEndian, uint32(0)) // offset
	_ = binary.Write(buf, binary.BigEndian, uint32(0)) // block size
	buf.Write(data)

	return buf.Bytes()
}
