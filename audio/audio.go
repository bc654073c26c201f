// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Sink receives mono float64 samples in order and serializes them into a
// container. Samples are nominally in [-1,1]; integer encodings clip.
type Sink interface {
	// WriteSamples appends samples to the stream.
	WriteSamples(samples []float64) error

	// Close finalizes headers and releases any resources.
	Close() error
}

// Encoder constructs a Sink for one container format.
type Encoder interface {
	// Check reports whether the encoder can write p, returning an error
	// wrapping ErrUnsupportedFormat when it cannot.
	Check(p Params) error

	// NewSink starts a stream on w. Containers with a size field in the
	// header seek back to patch it on Close.
	NewSink(w io.WriteSeeker, p Params) (Sink, error)
}

// Registry for encoders by container format.
type Registry struct {
	codecs map[Format]Encoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[Format]Encoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format Format, e Encoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = e
}

func (r *Registry) Get(format Format) (Encoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.codecs[format]
	return e, ok
}

// Check validates p against the registered encoder for its format.
func (r *Registry) Check(p Params) error {
	if err := p.validate(); err != nil {
		return err
	}

	e, ok := r.Get(p.Format)
	if !ok {
		return Unsupported(p, "no encoder registered")
	}

	return e.Check(p)
}
