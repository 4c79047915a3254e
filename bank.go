// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"math"
)

// SampleBank maps a pitch number to the ref of its sample.
type SampleBank interface {
	Lookup(pitch int) (string, error)
}

// DefaultNoteTemplate is the ref layout of the stock note samples.
const DefaultNoteTemplate = "midis/%d.ogg"

// TemplateBank formats the pitch into Template with fmt verbs. Pitches
// outside [MinPitch, MaxPitch] are rejected; a zero range accepts any
// non-negative pitch.
type TemplateBank struct {
	Template string
	MinPitch int
	MaxPitch int
}

// NewTemplateBank returns a bank covering the MIDI note range.
func NewTemplateBank(template string) TemplateBank {
	return TemplateBank{Template: template, MinPitch: 0, MaxPitch: 127}
}

func (b TemplateBank) Lookup(pitch int) (string, error) {
	lo, hi := b.MinPitch, b.MaxPitch
	if lo == 0 && hi == 0 {
		hi = math.MaxInt
	}
	if pitch < lo || pitch > hi {
		return "", fmt.Errorf("%w: %d outside [%d, %d]", ErrPitchNotFound, pitch, lo, hi)
	}

	tmpl := b.Template
	if tmpl == "" {
		tmpl = DefaultNoteTemplate
	}
	return fmt.Sprintf(tmpl, pitch), nil
}
