// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveInverse is the O(n²) definition the transforms must match.
func naiveInverse(spectrum []float64) []float64 {
	n := len(spectrum)
	out := make([]float64, n)
	for j := range n {
		for k, x := range spectrum {
			out[j] += x * math.Cos(2*math.Pi*float64(j*k)/float64(n))
		}
	}
	return out
}

func TestTransform_MatchesDefinition(t *testing.T) {
	t.Parallel()

	spectra := [][]float64{
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 3, 0, 0, 0, 0, 0, 3},
		{0, 0, 0, 0, 5, 0, 0, 0},
		{2, 1, 0, 7, 0, 0, 4, 0, 0}, // odd length, not symmetric
		{0.5, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	}

	for _, backend := range []Backend{BackendGonum, BackendGoDSP} {
		for i, spectrum := range spectra {
			tr, err := NewTransform(backend, len(spectrum))
			require.NoError(t, err)
			assert.Equal(t, len(spectrum), tr.Len())

			dst := make([]float64, len(spectrum))
			tr.Inverse(dst, spectrum)
			assert.InDeltaSlice(t, naiveInverse(spectrum), dst, 1e-9, "%s spectrum %d", backend, i)
		}
	}
}

func TestParseBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Backend
		err  error
	}{
		{"", BackendGonum, nil},
		{"gonum", BackendGonum, nil},
		{"GoDSP", BackendGoDSP, nil},
		{"fftw", "", ErrUnknownTransform},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewTransform_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewTransform(BackendGonum, 0)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = NewTransform(Backend("fftw"), 8)
	assert.ErrorIs(t, err, ErrUnknownTransform)
}
