// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToPCM scales x from [-1,1] to a signed integer sample of the given bit
// depth. Values outside [-1,1] are clamped to full scale, so a gain that
// drives the signal too hot clips instead of wrapping around.
func FloatToPCM(x float64, bitDepth int) int {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 2^(n-1)-1 so that +1 and -1 map symmetrically
	full := float64(int64(1)<<(bitDepth-1) - 1)
	return int(math.Round(x * full))
}

// FloatToU8 converts x to an unsigned 8-bit sample centred on 128.
func FloatToU8(x float64) uint8 {
	return uint8(FloatToPCM(x, 8) + 128)
}
