// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrUnsignedSamples indicates U8 output was requested; AIFF PCM is signed
	ErrUnsignedSamples = errors.New("AIFF cannot store unsigned samples")

	// ErrLittleEndian indicates a little-endian byte order was requested
	ErrLittleEndian = errors.New("AIFF cannot be written little-endian")
)
