// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"errors"
	"fmt"

	"github.com/ik5/audmix/audio"
)

var (
	// ErrPitchNotFound is returned when a note's pitch has no sample in the bank.
	ErrPitchNotFound = errors.New("pitch not found in sample bank")

	// ErrUnsupportedFormat is returned for refs whose extension has no
	// registered decoder. It matches audio.ErrDecode as well.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported format", audio.ErrDecode)
)
