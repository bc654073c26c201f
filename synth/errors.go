// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidDimension      = errors.New("invalid dimension")
	ErrInvalidFrequencyRange = errors.New("improper frequency range")
	ErrInvalidGain           = errors.New("gain must be positive")
	ErrNonFiniteSample       = errors.New("synthesis produced a non-finite sample")
	ErrUnknownTransform      = errors.New("unknown transform backend")
)
