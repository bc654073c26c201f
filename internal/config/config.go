// SPDX-License-Identifier: EPL-2.0

// Package config turns environment defaults and command-line flags into
// render options.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/csm/gray2snd"
	"github.com/csm/gray2snd/audio"
	"github.com/csm/gray2snd/synth"
)

// Flags is the command line before validation.
type Flags struct {
	Size        string
	SampleRate  int
	Duration    int
	MinFreq     float64
	MaxFreq     *float64 // nil means half the sample rate
	Gain        float64
	Logarithmic bool
	Fourier     bool

	Format     string
	SampleType string

	BigEndian    bool
	LittleEndian bool
	CPUEndian    bool

	Transform string
	Jobs      int
	Verbose   Level

	Version bool
	Help    bool
}

// Load reads defaults from the environment. Unparsable values fall back to
// the built-in defaults.
func Load() Flags {
	return Flags{
		SampleRate: envInt("GRAY2SND_SAMPLE_RATE", 44100),
		Duration:   envInt("GRAY2SND_DURATION", 100),
		Gain:       envFloat("GRAY2SND_GAIN", 1),
		Format:     envStr("GRAY2SND_FORMAT", "WAV"),
		SampleType: envStr("GRAY2SND_SAMPLE_TYPE", "16"),
		Transform:  envStr("GRAY2SND_TRANSFORM", string(synth.BackendGonum)),
		Jobs:       envInt("GRAY2SND_JOBS", 0),
	}
}

// Bind registers every option on fs under its long name and its one-letter
// alias. Current field values become the flag defaults.
func (f *Flags) Bind(fs *flag.FlagSet) {
	str := func(p *string, long, short, usage string) {
		fs.StringVar(p, long, *p, usage)
		if short != "" {
			fs.StringVar(p, short, *p, "alias for --"+long)
		}
	}
	num := func(p *int, long, short, usage string) {
		fs.IntVar(p, long, *p, usage)
		if short != "" {
			fs.IntVar(p, short, *p, "alias for --"+long)
		}
	}
	float := func(p *float64, long, short, usage string) {
		fs.Float64Var(p, long, *p, usage)
		fs.Float64Var(p, short, *p, "alias for --"+long)
	}
	on := func(p *bool, long, short, usage string) {
		fs.BoolVar(p, long, *p, usage)
		fs.BoolVar(p, short, *p, "alias for --"+long)
	}

	str(&f.Size, "size", "s", "image size as WIDTHxHEIGHT (required)")
	num(&f.Duration, "duration", "d", "samples per image column")
	str(&f.Format, "format", "f", "output format: AU, AIFF, RAW or WAV")
	on(&f.Fourier, "fourier", "F", "use the inverse FFT instead of summing sines")
	float(&f.Gain, "gain", "g", "output gain")
	on(&f.Logarithmic, "logarithmic", "L", "halve the frequency spacing row by row")
	float(&f.MinFreq, "minimum-frequency", "m", "frequency of the bottom row in Hz")
	num(&f.SampleRate, "sample-rate", "r", "samples per second")
	str(&f.SampleType, "sample-type", "t", "sample encoding: U8, S8, 16, 24, 32, FLOAT, DOUBLE or HALF")
	on(&f.BigEndian, "big-endian", "b", "write big-endian samples")
	on(&f.LittleEndian, "little-endian", "l", "write little-endian samples")
	on(&f.CPUEndian, "cpu-endian", "c", "write samples in host byte order")
	str(&f.Transform, "transform", "", "FFT backend for --fourier: gonum or godsp")
	num(&f.Jobs, "jobs", "j", "columns synthesized at once (0 means one per CPU)")
	on(&f.Version, "version", "V", "print the version and exit")
	on(&f.Help, "help", "h", "print this help and exit")

	maxFreq := func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		f.MaxFreq = &v
		return nil
	}
	fs.Func("maximum-frequency", "frequency of the top row in Hz (default half the sample rate)", maxFreq)
	fs.Func("M", "alias for --maximum-frequency", maxFreq)

	fs.Var(&f.Verbose, "verbose", "print progress, twice to also list frequencies")
	fs.Var(&f.Verbose, "v", "alias for --verbose")
}

// Resolve validates the flags and builds render options. logger receives
// diagnostics when Verbose is set.
func (f *Flags) Resolve(logger *log.Logger) (gray2snd.Options, error) {
	opts := gray2snd.DefaultOptions()

	w, h, err := ParseSize(f.Size)
	if err != nil {
		return opts, err
	}

	if opts.Format, err = audio.ParseFormat(f.Format); err != nil {
		return opts, err
	}
	if opts.Encoding, err = audio.ParseEncoding(f.SampleType); err != nil {
		return opts, err
	}
	if opts.Order, err = f.byteOrder(); err != nil {
		return opts, err
	}
	if opts.Transform, err = synth.ParseBackend(f.Transform); err != nil {
		return opts, err
	}

	opts.Config = synth.Config{
		SampleRate:  f.SampleRate,
		Duration:    f.Duration,
		MinFreq:     f.MinFreq,
		MaxFreq:     float64(f.SampleRate) / 2,
		Gain:        f.Gain,
		Width:       w,
		Height:      h,
		Logarithmic: f.Logarithmic,
		Spectral:    f.Fourier,
	}
	if f.MaxFreq != nil {
		opts.MaxFreq = *f.MaxFreq
	}

	opts.Workers = f.Jobs
	if opts.Workers < 1 {
		opts.Workers = runtime.NumCPU()
	}

	opts.Verbose = int(f.Verbose)
	if opts.Verbose > 0 {
		opts.Logger = logger
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	if err := gray2snd.DefaultRegistry().Check(opts.Params()); err != nil {
		return opts, err
	}

	return opts, nil
}

func (f *Flags) byteOrder() (audio.ByteOrder, error) {
	order := audio.OrderFile
	n := 0
	for _, o := range []struct {
		set   bool
		order audio.ByteOrder
	}{
		{f.BigEndian, audio.OrderBig},
		{f.LittleEndian, audio.OrderLittle},
		{f.CPUEndian, audio.OrderCPU},
	} {
		if o.set {
			order = o.order
			n++
		}
	}

	if n > 1 {
		return audio.OrderFile, ErrByteOrderConflict
	}
	return order, nil
}

// ParseSize reads "WIDTHxHEIGHT". Range checks are left to synth.Config.
func ParseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}

	width, err = strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	height, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}

	return width, height, nil
}

// Level counts repeated -v flags.
type Level int

func (l *Level) String() string {
	if l == nil {
		return "0"
	}
	return strconv.Itoa(int(*l))
}

// Set counts -v and -v=true; -v=false leaves the level alone.
func (l *Level) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*l++
	}
	return nil
}

func (l *Level) IsBoolFlag() bool { return true }

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
