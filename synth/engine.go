// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Engine synthesizes one image column at a time.
type Engine interface {
	// Render fills dst with the column's samples. start is the index of
	// dst[0] in the whole output; Render returns start+len(dst).
	Render(dst []float64, column []uint8, start int) int
}

// NewEngine picks the engine cfg asks for. Spectral engines get their own
// transform from backend, so every call returns an independent engine that
// can run on its own goroutine.
func NewEngine(cfg Config, table Table, backend Backend) (Engine, error) {
	if !cfg.Spectral {
		return NewAdditive(cfg, table)
	}

	tr, err := NewTransform(backend, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	return NewSpectral(cfg, table, tr)
}

// CheckFinite reports the first NaN or infinite sample.
func CheckFinite(samples []float64) error {
	for i, x := range samples {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %v at offset %d", ErrNonFiniteSample, x, i)
		}
	}
	return nil
}
