// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/csm/gray2snd"
	"github.com/csm/gray2snd/internal/config"
	"github.com/csm/gray2snd/internal/progress"
	"github.com/csm/gray2snd/pixmap"
)

const name = "gray2snd"

// version is replaced at link time with -ldflags "-X main.version=...".
var version = "dev"

const help = `usage: %s [options] --size=WxH in-file out-file

Input options:
  -s, --size=WxH              Size of the raw grayscale input image.

Output options:
  -b, --big-endian            Write big-endian samples.
  -l, --little-endian         Write little-endian samples.
  -c, --cpu-endian            Write samples in the host byte order. Without
                              any of these the format's own order is used.
  -d, --duration=LEN          Samples per image column. (default: 100)
  -g, --gain=GAIN             Output gain. (default: 1)
  -f, --format=FORMAT         Output format: AU AIFF RAW WAV. (default: WAV)
  -F, --fourier               Synthesize with an inverse FFT instead of
                              summing sines.
      --transform=NAME        FFT backend for --fourier: gonum godsp.
                              (default: gonum)
  -L, --logarithmic           Space frequencies logarithmically.
  -m, --minimum-frequency=Hz  Frequency of the bottom row. (default: 0)
  -M, --maximum-frequency=Hz  Frequency of the top row.
                              (default: SAMPLE_RATE/2)
  -r, --sample-rate=RATE      Samples per second. (default: 44100)
  -t, --sample-type=TYPE      Sample encoding: U8 S8 16 24 32 FLOAT DOUBLE
                              HALF. (default: 16)
  -j, --jobs=N                Columns rendered in parallel. (default: CPUs)
  -v, --verbose               Report progress; twice to list frequencies.

Other options:
  -h, --help                  Show this help message.
  -V, --version               Print the version and exit.
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := config.Load()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	flags.Bind(fs)

	if err := fs.Parse(args); err != nil {
		return usage(stderr, err.Error())
	}

	switch {
	case flags.Help:
		fmt.Fprintf(stdout, help, name)
		return 0
	case flags.Version:
		fmt.Fprintf(stdout, "%s: version %s\n", name, version)
		return 0
	}

	if fs.NArg() != 2 {
		return usage(stderr, "need an input and an output file")
	}
	in, out := fs.Arg(0), fs.Arg(1)

	logger := log.New(stderr, "", 0)
	opts, err := flags.Resolve(logger)
	if err != nil {
		return usage(stderr, err.Error())
	}

	grid, err := pixmap.Fetch(in, opts.Width, opts.Height)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	var bar *progress.Bar
	if opts.Verbose > 0 {
		logger.Printf("Read %d by %d bitmap; %d bytes.", grid.Width, grid.Height, len(grid.Pix))

		bar = progress.New(stderr, "Rendering")
		opts.Progress = bar.Update
	}

	err = gray2snd.Render(ctx, out, grid, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(stderr, "%s: interrupted, %s is incomplete\n", name, out)
			return 1
		}
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}

	return 0
}

// usage prints msg and the usage line. fs.Usage is left silent.
func usage(stderr io.Writer, msg string) int {
	fmt.Fprintf(stderr, "%s: %s\n", name, msg)
	fmt.Fprintf(stderr, "usage: %s [options] --size=WxH in-file out-file\n", name)
	return 1
}
