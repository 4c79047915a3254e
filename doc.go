// SPDX-License-Identifier: EPL-2.0

// Package audmix composes decoded audio clips and renders the result as a
// 16-bit PCM WAV file.
//
// A Processor runs every operation through the same pipeline: the sources
// are loaded in parallel, handed to one composer from the audio package,
// optionally compressed, scaled by the output volume (0.8 by default) and
// encoded with formats/wav.
//
// # Supported Formats
//
// DefaultRegistry picks a decoder from the extension of each ref:
//   - WAV (8, 16, 24 and 32-bit PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis (.ogg, .oga) via formats/vorbis
//   - AIFF (.aiff, .aif) via formats/aiff
//   - FLAC via formats/flac
//
// Mono sources are upmixed to stereo as they are loaded.
//
// # Quick Start
//
//	p := audmix.New(audmix.FileLoader{Root: "assets"})
//
//	wavBytes, err := p.Concat(ctx, "1.wav", "2.wav")
//	wavBytes, err = p.Merge(ctx, "bg1.wav", "bg2.wav")
//	wavBytes, err = p.Slice(ctx, "viper.mp3", 0, 3)
//	wavBytes, err = p.InsertEffects(ctx, "bg1.wav", []audmix.Effect{
//	    {Src: "Hit.ogg", Duration: 0.2, StartTime: 1.5},
//	})
//	wavBytes, err = p.MergeNotes(ctx, []audmix.Note{{Pitch: 60, Duration: 0.5}})
//
// # Loaders
//
// FileLoader reads refs below a root directory and HTTPLoader fetches them
// relative to a base URL. Any type with an Open(ctx, ref) method works.
//
// # Notes
//
// MergeNotes resolves each pitch through a SampleBank. The default bank maps
// pitch 60 to "midis/60.ogg" and renders at the sample rate of the audio
// context given with WithContext (44100 Hz by default).
//
// # Error Handling
//
// Every load or decode failure matches audio.ErrDecode. Unknown extensions
// also match ErrUnsupportedFormat and missing note samples ErrPitchNotFound.
// An operation either returns a complete file or an error.
package audmix
