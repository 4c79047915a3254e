// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory PCM primitives used by audmix.
//
// This package contains the core building blocks:
//   - Source interface for streaming decoder output
//   - Buffer, a planar float32 clip with a sample rate
//   - Upmix, ApplyGain and Compressor transforms
//   - Concat, Merge, Slice, InsertEffects and MergeNotes composers
//   - Format registry for decoder registration
//
// # Source Interface
//
// Decoders expose their output as a Source of interleaved samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadBuffer drains a Source into a Buffer. DecodeBuffer does the same
// starting from a Decoder and an io.Reader, and upmixes mono results so
// that every decoded clip has at least two channels.
//
// # Buffers
//
// A Buffer stores one slice per channel:
//
//	buf, _ := audio.NewBuffer(2, 44100, 44100) // one second of stereo silence
//	left := buf.Channel(0)
//
// Samples are nominally in [-1.0, 1.0]. Mixing and gain may push them past
// that range; clamping happens only when a buffer is encoded.
//
// # Composition
//
// The composers never modify their inputs:
//
//	joined, _ := audio.Concat(intro, verse)
//	mixed, _ := audio.Merge(drums, bass)
//	cut, _ := audio.Slice(track, 0, 2.5)
//	fx, _ := audio.InsertEffects(track, []audio.Effect{{Buffer: hit, Duration: 0.2, StartTime: 1}})
//	tune, _ := audio.MergeNotes(44100, notes)
//
// ApplyGain is the exception to the rule: it scales the buffer in place.
//
// # Format Registry
//
// The registry maps lowercase format names to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("WAV")
package audio
