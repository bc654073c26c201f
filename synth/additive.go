// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Additive renders a column as a sum of sines, one per image row, weighted
// by pixel brightness.
type Additive struct {
	table  Table // radians per second
	height int
	rate   float64
	gain   float64
}

// NewAdditive expects table in radians per second, one entry per row.
func NewAdditive(cfg Config, table Table) (*Additive, error) {
	if len(table) != cfg.Height {
		return nil, fmt.Errorf("%w: %d table entries for %d rows", ErrInvalidDimension, len(table), cfg.Height)
	}

	return &Additive{
		table:  table,
		height: cfg.Height,
		rate:   float64(cfg.SampleRate),
		gain:   cfg.Gain,
	}, nil
}

// Render fills dst with one column. start is the time cursor: the index of
// dst[0] in the whole output, so phase carries over from column to column.
// It returns the cursor for the next column. The result is not clipped.
func (a *Additive) Render(dst []float64, column []uint8, start int) int {
	for t := range dst {
		time := float64(start+t) / a.rate

		var sum float64
		for row, p := range column {
			if p == 0 {
				continue
			}
			sum += float64(p) / 255 * math.Sin(a.table[a.height-1-row]*time)
		}

		dst[t] = sum / float64(a.height) * a.gain
	}

	return start + len(dst)
}
