// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/csm/gray2snd/audio"
)

// Encoder writes headerless sample data. Every encoding is accepted, and
// the default byte order is little-endian.
type Encoder struct{}

func (Encoder) Check(audio.Params) error { return nil }

func (Encoder) NewSink(w io.WriteSeeker, p audio.Params) (audio.Sink, error) {
	return &sink{
		w:        w,
		order:    p.Order.Resolve(binary.LittleEndian),
		encoding: p.Encoding,
	}, nil
}

type sink struct {
	w        io.Writer
	order    binary.ByteOrder
	encoding audio.Encoding
	scratch  []byte
}

func (s *sink) WriteSamples(samples []float64) error {
	s.scratch = audio.AppendSamples(s.scratch[:0], s.order, s.encoding, samples)

	if _, err := s.w.Write(s.scratch); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close is a no-op: there is no header to finalize.
func (s *sink) Close() error { return nil }
