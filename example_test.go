// SPDX-License-Identifier: EPL-2.0

package audmix_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/internal/audiotest"
)

// Example_concat joins two seconds of silence into one WAV file.
func Example_concat() {
	dir, err := os.MkdirTemp("", "audmix-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	silence := audiotest.WAV16(44100, 2, make([]int16, 44100*2))
	for _, name := range []string{"1.wav", "2.wav"} {
		if err := os.WriteFile(filepath.Join(dir, name), silence, 0o644); err != nil {
			fmt.Println(err)
			return
		}
	}

	p := audmix.New(audmix.FileLoader{Root: dir},
		audmix.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	data, err := p.Concat(context.Background(), "1.wav", "2.wav")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("WAV size: %d bytes\n", len(data))
	fmt.Printf("Header: %s %s\n", data[0:4], data[8:12])
	// Output:
	// WAV size: 352844 bytes
	// Header: RIFF WAVE
}

// Example_sampleBank resolves note pitches to sample refs.
func Example_sampleBank() {
	bank := audmix.TemplateBank{Template: audmix.DefaultNoteTemplate, MinPitch: 60, MaxPitch: 67}

	ref, _ := bank.Lookup(64)
	fmt.Println(ref)

	_, err := bank.Lookup(72)
	fmt.Println(errors.Is(err, audmix.ErrPitchNotFound))
	// Output:
	// midis/64.ogg
	// true
}

// Example_unsupportedFormat shows the error for refs without a decoder.
func Example_unsupportedFormat() {
	p := audmix.New(audmix.FileLoader{},
		audmix.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	_, err := p.Load(context.Background(), "notes.mid")
	fmt.Println(errors.Is(err, audmix.ErrUnsupportedFormat))
	// Output:
	// true
}
