// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"strings"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transform turns a real spectrum into a real time series of the same
// length.
type Transform interface {
	// Len is the transform size n.
	Len() int
	// Inverse writes the real part of the unnormalized inverse DFT of
	// spectrum into dst:
	//
	//	dst[j] = Σ_k spectrum[k]·cos(2πjk/n)
	//
	// Both slices must have length n.
	Inverse(dst, spectrum []float64)
}

// Backend names a Transform implementation.
type Backend string

const (
	// BackendGonum uses gonum's real-input FFTPACK port.
	BackendGonum Backend = "gonum"
	// BackendGoDSP uses go-dsp's complex FFT, with Bluestein's algorithm for
	// sizes that are not a power of two.
	BackendGoDSP Backend = "godsp"
)

// ParseBackend accepts "gonum" or "godsp"; an empty string selects gonum.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(s)); b {
	case "":
		return BackendGonum, nil
	case BackendGonum, BackendGoDSP:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTransform, s)
}

// NewTransform creates a size-n transform. Transforms keep scratch space
// and must not be shared between goroutines.
func NewTransform(b Backend, n int) (Transform, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: transform size %d", ErrInvalidDimension, n)
	}

	switch b {
	case BackendGonum, "":
		return &gonumTransform{
			fft:   fourier.NewFFT(n),
			coeff: make([]complex128, n/2+1),
		}, nil
	case BackendGoDSP:
		return godspTransform{n: n}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, string(b))
}

type gonumTransform struct {
	fft   *fourier.FFT
	coeff []complex128
}

func (g *gonumTransform) Len() int { return g.fft.Len() }

// Inverse folds the spectrum onto the n/2+1 Hermitian coefficients gonum
// expects. Averaging bins k and n-k keeps exactly the cosine (real) part.
func (g *gonumTransform) Inverse(dst, spectrum []float64) {
	n := len(spectrum)
	g.coeff[0] = complex(spectrum[0], 0)
	for k := 1; k <= n/2; k++ {
		g.coeff[k] = complex((spectrum[k]+spectrum[n-k])/2, 0)
	}
	g.fft.Sequence(dst, g.coeff)
}

type godspTransform struct {
	n int
}

func (g godspTransform) Len() int { return g.n }

func (g godspTransform) Inverse(dst, spectrum []float64) {
	// go-dsp scales its inverse by 1/n
	out := fft.IFFTReal(spectrum)
	scale := float64(g.n)
	for i := range dst {
		dst[i] = real(out[i]) * scale
	}
}
