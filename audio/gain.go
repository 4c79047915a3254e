// SPDX-License-Identifier: EPL-2.0

package audio

// DefaultVolume is the headroom gain applied after every composition.
const DefaultVolume = 0.8

// ApplyGain multiplies every sample of b by volume, in place, and returns b.
// The caller hands over b for the duration of the call. No clipping is done.
func ApplyGain(b *Buffer, volume float64) *Buffer {
	for _, ch := range b.Data {
		for i, x := range ch {
			ch[i] = float32(float64(x) * volume)
		}
	}
	return b
}
