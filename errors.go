// SPDX-License-Identifier: EPL-2.0

package gray2snd

import (
	"github.com/csm/gray2snd/audio"
	"github.com/csm/gray2snd/pixmap"
	"github.com/csm/gray2snd/synth"
)

// Error kinds reported by Render, for use with errors.Is.
var (
	ErrInvalidDimension      = synth.ErrInvalidDimension
	ErrInvalidFrequencyRange = synth.ErrInvalidFrequencyRange
	ErrInvalidGain           = synth.ErrInvalidGain
	ErrNonFiniteSample       = synth.ErrNonFiniteSample
	ErrUnknownTransform      = synth.ErrUnknownTransform

	ErrTruncatedImage = pixmap.ErrTruncatedImage
	ErrSizeMismatch   = pixmap.ErrSizeMismatch

	ErrUnsupportedFormat = audio.ErrUnsupportedFormat
	ErrUnknownFormat     = audio.ErrUnknownFormat
	ErrUnknownEncoding   = audio.ErrUnknownEncoding
	ErrUnknownByteOrder  = audio.ErrUnknownByteOrder
	ErrSinkOpen          = audio.ErrSinkOpen
	ErrSinkWrite         = audio.ErrSinkWrite
	ErrSinkClose         = audio.ErrSinkClose
)
