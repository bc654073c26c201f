// SPDX-License-Identifier: EPL-2.0

// Package gray2snd renders a raw grayscale image as sound.
//
// Every image column becomes a short slice of audio. Each pixel row is
// mapped to one frequency, with the top row getting the highest pitch, and
// the brightness of a pixel sets how loud its frequency sounds in that
// column.
//
// # Quick Start
//
//	grid, _ := pixmap.Fetch("picture.raw", 320, 240)
//
//	opts := gray2snd.DefaultOptions()
//	opts.Width, opts.Height = grid.Width, grid.Height
//	opts.MaxFreq = float64(opts.SampleRate) / 2
//
//	err := gray2snd.Render(context.Background(), "picture.wav", grid, opts)
//
// # Synthesis Modes
//
// Two engines are available through synth.Config:
//   - Additive (default): sums one sine wave per row for each sample.
//   - Spectral (Spectral = true): fills a one-second spectrum per column and
//     runs an inverse FFT through either gonum or go-dsp.
//
// # Output
//
// The sink is chosen by Options.Format and Options.Encoding:
//   - WAV via formats/wav (U8, 16, 24, 32, FLOAT, DOUBLE; RIFX when big-endian)
//   - AIFF via formats/aiff (S8, 16, 24, 32; FLOAT and DOUBLE as AIFF-C)
//   - AU via formats/au (S8, 16, 24, 32, FLOAT, DOUBLE)
//   - RAW via formats/raw (every encoding, including HALF)
//
// Other combinations fail with ErrUnsupportedFormat before the output file
// is created.
//
// # Concurrency
//
// Options.Workers columns are synthesized at once, each on its own engine,
// and are written strictly in column order. The output does not depend on
// the worker count.
package gray2snd
