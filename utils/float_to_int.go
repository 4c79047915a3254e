// SPDX-License-Identifier: EPL-2.0

package utils

// QuantizeInt16 converts a float sample to signed 16-bit PCM.
//
// The sample is clamped to [-1, 1] first. Non-negative values are scaled by
// 32767 and negative values by 32768, so both ends of the int16 range are
// reachable. The conversion truncates toward zero.
func QuantizeInt16(x float32) int16 {
	s := float64(x)
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}

	if s < 0 {
		return int16(s * 32768)
	}

	return int16(s * 32767)
}
