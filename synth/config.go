// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// MaxDimension bounds image width and height (15 bits).
const MaxDimension = 32767

// Config is the immutable description of one render.
type Config struct {
	// SampleRate in samples per second.
	SampleRate int
	// Duration is the number of samples each image column becomes.
	Duration int

	MinFreq float64
	MaxFreq float64
	Gain    float64

	Width  int
	Height int

	// Logarithmic selects the halving frequency map instead of the linear one.
	Logarithmic bool
	// Spectral selects inverse-transform synthesis instead of summing sines.
	Spectral bool
}

// Validate checks every field, reporting the first offending value.
func (c Config) Validate() error {
	dims := []struct {
		name  string
		value int
		limit int
	}{
		{"width", c.Width, MaxDimension},
		{"height", c.Height, MaxDimension},
		{"duration", c.Duration, math.MaxInt32},
		{"sample rate", c.SampleRate, math.MaxInt32},
	}
	for _, d := range dims {
		if d.value < 1 || d.value > d.limit {
			return fmt.Errorf("%w: %s %d", ErrInvalidDimension, d.name, d.value)
		}
	}

	if !(c.MinFreq >= 0) || !(c.MaxFreq > c.MinFreq) || math.IsInf(c.MaxFreq, 1) {
		return fmt.Errorf("%w: min %g Hz, max %g Hz", ErrInvalidFrequencyRange, c.MinFreq, c.MaxFreq)
	}

	if !(c.Gain > 0) || math.IsInf(c.Gain, 1) {
		return fmt.Errorf("%w: %g", ErrInvalidGain, c.Gain)
	}

	return nil
}

// Samples is the total number of samples a render emits.
func (c Config) Samples() int {
	return c.Width * c.Duration
}

// Table builds the frequency table in the units the selected engine needs.
func (c Config) Table() (Table, error) {
	return BuildTable(c.Height, c.MinFreq, c.MaxFreq, c.Logarithmic, !c.Spectral)
}
