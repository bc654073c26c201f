// SPDX-License-Identifier: EPL-2.0

package gray2snd

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/csm/gray2snd/audio"
	"github.com/csm/gray2snd/pixmap"
	"github.com/csm/gray2snd/synth"
)

// Options configures one render.
type Options struct {
	synth.Config

	Format   audio.Format
	Encoding audio.Encoding
	Order    audio.ByteOrder

	// Transform picks the inverse FFT used by the spectral engine.
	Transform synth.Backend

	// Workers is how many columns are synthesized at once. Values below 1
	// mean 1.
	Workers int

	// Registry supplies container encoders. Nil means DefaultRegistry.
	Registry *audio.Registry

	// Logger receives diagnostics. Nil keeps the render silent.
	Logger *log.Logger
	// Verbose at 2 or more logs the frequency table before rendering.
	Verbose int
	// Progress is called after every written column.
	Progress func(done, total int)
}

// DefaultOptions returns the CLI defaults: 44.1 kHz, 100 samples per column,
// unit gain, a linear map up to the Nyquist frequency and 16-bit WAV.
// Width and Height are left for the caller.
func DefaultOptions() Options {
	return Options{
		Config: synth.Config{
			SampleRate: 44100,
			Duration:   100,
			MaxFreq:    44100 / 2,
			Gain:       1,
		},
		Format:    audio.FormatWAV,
		Encoding:  audio.EncodingPCM16,
		Order:     audio.OrderFile,
		Transform: synth.BackendGonum,
		Workers:   1,
	}
}

// Params describes the mono stream the render writes.
func (o Options) Params() audio.Params {
	return audio.Params{
		Channels:   1,
		SampleRate: o.SampleRate,
		Format:     o.Format,
		Encoding:   o.Encoding,
		Order:      o.Order,
	}
}

func (o Options) registry() *audio.Registry {
	if o.Registry == nil {
		return DefaultRegistry()
	}
	return o.Registry
}

// Render writes grid as audio to the file at path. Everything is validated
// before the file is created. The file is closed exactly once; if writing
// fails the partial file stays on disk.
func Render(ctx context.Context, path string, grid *pixmap.Grid, opts Options) (err error) {
	engines, err := prepare(grid, opts)
	if err != nil {
		return err
	}

	sink, err := audio.Create(path, opts.Params(), opts.registry())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); err == nil {
			err = cerr
		}
	}()

	return render(ctx, sink, grid, engines, opts)
}

// RenderTo writes grid into sink. The caller keeps ownership of sink and
// must close it.
func RenderTo(ctx context.Context, sink audio.Sink, grid *pixmap.Grid, opts Options) error {
	engines, err := prepare(grid, opts)
	if err != nil {
		return err
	}

	return render(ctx, sink, grid, engines, opts)
}

// prepare validates the render and builds one engine per worker, all
// sharing the same frequency table.
func prepare(grid *pixmap.Grid, opts Options) ([]synth.Engine, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if grid == nil {
		return nil, fmt.Errorf("%w: no image", ErrInvalidDimension)
	}
	if grid.Width != cfg.Width || grid.Height != cfg.Height || len(grid.Pix) != cfg.Width*cfg.Height {
		return nil, fmt.Errorf("%w: image is %dx%d with %d pixels, render expects %dx%d",
			ErrInvalidDimension, grid.Width, grid.Height, len(grid.Pix), cfg.Width, cfg.Height)
	}

	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}

	if opts.Logger != nil && opts.Verbose >= 2 {
		for i, f := range table.Hertz(!cfg.Spectral) {
			opts.Logger.Printf("frequency [%d] = %.32f Hz", i, f)
		}
	}

	workers := min(max(opts.Workers, 1), cfg.Width)
	engines := make([]synth.Engine, workers)
	for i := range engines {
		if engines[i], err = synth.NewEngine(cfg, table, opts.Transform); err != nil {
			return nil, err
		}
	}

	return engines, nil
}

// render synthesizes len(engines) columns at a time and writes each batch
// in column order. The sample cursor of column x is x·Duration, so batches
// produce the same samples as a single engine walking every column.
func render(ctx context.Context, sink audio.Sink, grid *pixmap.Grid, engines []synth.Engine, opts Options) error {
	dur := opts.Duration
	bufs := make([][]float64, len(engines))
	cols := make([][]uint8, len(engines))
	for i := range engines {
		bufs[i] = make([]float64, dur)
		cols[i] = make([]uint8, grid.Height)
	}

	for x0 := 0; x0 < grid.Width; x0 += len(engines) {
		if err := ctx.Err(); err != nil {
			return err
		}

		n := min(len(engines), grid.Width-x0)
		column := func(i int) {
			x := x0 + i
			engines[i].Render(bufs[i], grid.Column(x, cols[i]), x*dur)
		}

		if n == 1 {
			column(0)
		} else {
			var wg sync.WaitGroup
			for i := range n {
				wg.Go(func() { column(i) })
			}
			wg.Wait()
		}

		for i := range n {
			x := x0 + i
			if err := synth.CheckFinite(bufs[i]); err != nil {
				return fmt.Errorf("column %d: %w", x, err)
			}
			if err := sink.WriteSamples(bufs[i]); err != nil {
				return fmt.Errorf("column %d: %w", x, err)
			}
			if opts.Progress != nil {
				opts.Progress(x+1, grid.Width)
			}
		}
	}

	return nil
}
