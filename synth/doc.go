// SPDX-License-Identifier: EPL-2.0

// Package synth turns columns of grayscale pixels into audio.
//
// Each image row is assigned a frequency by BuildTable, top row highest.
// For each column an Engine produces Duration samples from the brightness
// of the pixels in that column.
//
// # Frequency Tables
//
// Linear tables step evenly from MinFreq to MaxFreq. Logarithmic tables give
// the last row the whole span and halve it row by row, so the low end is
// dense and the top rows are far apart:
//
//	table, err := synth.BuildTable(4, 0, 800, true, false)
//	// table == [100 200 400 800]
//
// # Engines
//
// Additive sums one sine per row at every sample. Its time cursor is the
// absolute sample index, passed in and returned by Render, which keeps the
// waveform continuous across columns without shared state.
//
// Spectral writes each row's brightness into bins k and n-k of an
// n = SampleRate point spectrum and inverse transforms it. Only the first
// Duration samples of that second are kept, so a column costs a full
// transform; keep Duration well below the sample rate in this mode.
//
// # Transforms
//
// The Transform interface hides the FFT. Two backends exist:
//   - BackendGonum: gonum.org/v1/gonum/dsp/fourier (default)
//   - BackendGoDSP: github.com/mjibson/go-dsp/fft
//
// # Error Handling
//
//   - ErrInvalidDimension: width, height, duration or sample rate out of range
//   - ErrInvalidFrequencyRange: min < 0 or max <= min
//   - ErrInvalidGain: gain <= 0
//   - ErrNonFiniteSample: NaN or Inf reached the output
//   - ErrUnknownTransform: unrecognized backend name
package synth
