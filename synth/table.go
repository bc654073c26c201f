// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Table holds one frequency per image row. Entry 0 is the lowest frequency;
// the engines read it inverted so the top image row gets the highest entry.
type Table []float64

// BuildTable maps height rows onto [minFreq, maxFreq].
//
// The linear map spaces rows evenly and needs at least two rows. The
// logarithmic map gives the last row the full span and halves the span for
// every row below it, so most rows crowd towards minFreq.
//
// With radians set every entry is scaled by 2π, the angular frequency the
// additive engine feeds to sin; the spectral engine wants Hertz.
func BuildTable(height int, minFreq, maxFreq float64, logarithmic, radians bool) (Table, error) {
	if height < 1 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidDimension, height)
	}

	table := make(Table, height)

	if logarithmic {
		df := maxFreq - minFreq
		for x := height - 1; x >= 0; x-- {
			table[x] = df + minFreq
			df /= 2
		}
	} else {
		if height < 2 {
			return nil, fmt.Errorf("%w: linear mapping needs 2 rows, got %d", ErrInvalidDimension, height)
		}
		df := (maxFreq - minFreq) / float64(height-1)
		for x := range table {
			table[x] = df*float64(x) + minFreq
		}
	}

	if radians {
		for x := range table {
			table[x] *= 2 * math.Pi
		}
	}

	return table, nil
}

// Hertz returns the table in Hz whatever unit it was built in.
func (t Table) Hertz(radians bool) []float64 {
	out := make([]float64, len(t))
	for i, f := range t {
		if radians {
			f /= 2 * math.Pi
		}
		out[i] = f
	}
	return out
}
