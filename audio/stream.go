// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Create opens path for writing and starts a stream through the encoder
// registered for p.Format. Closing the returned Sink also closes the file.
// A partially written file is left in place when a later write fails.
func Create(path string, p Params, reg *Registry) (Sink, error) {
	enc, err := lookup(p, reg)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkOpen, err)
	}

	s, err := enc.NewSink(f, p)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrSinkOpen, path, err)
	}

	return &stream{sink: s, file: f}, nil
}

// Open starts a stream on w. The caller keeps ownership of w.
func Open(w io.WriteSeeker, p Params, reg *Registry) (Sink, error) {
	enc, err := lookup(p, reg)
	if err != nil {
		return nil, err
	}

	s, err := enc.NewSink(w, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkOpen, err)
	}

	return &stream{sink: s}, nil
}

func lookup(p Params, reg *Registry) (Encoder, error) {
	if err := reg.Check(p); err != nil {
		return nil, err
	}

	enc, _ := reg.Get(p.Format)
	return enc, nil
}

// stream wraps an encoder sink with the open/write/close error kinds and
// makes Close idempotent.
type stream struct {
	sink   Sink
	file   io.Closer
	closed bool
}

func (s *stream) WriteSamples(samples []float64) error {
	if s.closed {
		return fmt.Errorf("%w: stream already closed", ErrSinkWrite)
	}

	if err := s.sink.WriteSamples(samples); err != nil {
		return fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}

	return nil
}

func (s *stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.sink.Close()
	if s.file != nil {
		err = errors.Join(err, s.file.Close())
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSinkClose, err)
	}

	return nil
}
