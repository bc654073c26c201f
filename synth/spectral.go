// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Spectral renders a column by placing each row's brightness in a
// sampleRate-long spectrum and inverse transforming it into one second of
// audio, of which the first Duration samples are kept.
//
// Every column pays for a full sampleRate-point transform no matter how
// short Duration is, so this engine is far slower than Additive unless
// Duration is much smaller than the sample rate.
type Spectral struct {
	tr    Transform
	n     int
	scale float64

	// bins[row] is the spectrum index for image row (top row first) and
	// mirrors[row] its reflection n-k.
	bins    []int
	mirrors []int

	spectrum []float64
	out      []float64
}

// NewSpectral expects table in Hertz and tr sized to the sample rate.
func NewSpectral(cfg Config, table Table, tr Transform) (*Spectral, error) {
	if len(table) != cfg.Height {
		return nil, fmt.Errorf("%w: %d table entries for %d rows", ErrInvalidDimension, len(table), cfg.Height)
	}
	n := cfg.SampleRate
	if tr.Len() != n {
		return nil, fmt.Errorf("%w: transform size %d for sample rate %d", ErrInvalidDimension, tr.Len(), n)
	}

	s := &Spectral{
		tr:       tr,
		n:        n,
		scale:    cfg.Gain / (float64(n) / 2),
		bins:     make([]int, cfg.Height),
		mirrors:  make([]int, cfg.Height),
		spectrum: make([]float64, n),
		out:      make([]float64, n),
	}

	for row := range cfg.Height {
		k := wrap(int(math.Round(table[cfg.Height-1-row])), n)
		s.bins[row] = k
		s.mirrors[row] = wrap(n-k, n)
	}

	return s, nil
}

// wrap reduces k modulo n into [0, n).
func wrap(k, n int) int {
	k %= n
	if k < 0 {
		k += n
	}
	return k
}

// Bins returns the two spectrum indices image row row writes to.
func (s *Spectral) Bins(row int) (k, mirror int) {
	return s.bins[row], s.mirrors[row]
}

// Spectrum builds the column's spectrum in the engine's scratch buffer and
// returns it. Rows that land on the same bin accumulate.
func (s *Spectral) Spectrum(column []uint8) []float64 {
	clear(s.spectrum)
	for row, p := range column {
		if p == 0 {
			continue
		}
		v := float64(p)
		s.spectrum[s.bins[row]] += v
		s.spectrum[s.mirrors[row]] += v
	}
	return s.spectrum
}

// Render fills dst with one column. The spectral engine keeps no state
// between columns; start is only advanced. dst longer than the sample rate
// repeats the transform's period.
func (s *Spectral) Render(dst []float64, column []uint8, start int) int {
	s.tr.Inverse(s.out, s.Spectrum(column))

	for i := range dst {
		dst[i] = s.out[i%s.n] * s.scale
	}

	return start + len(dst)
}
