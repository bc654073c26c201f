// SPDX-License-Identifier: EPL-2.0

package au

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/csm/gray2snd/audio"
)

const (
	magic      = 0x2e736e64 // ".snd"
	headerSize = 24
	// unknownSize marks the data size as "read to end of file"
	unknownSize = 0xffffffff
)

// encodings maps sample encodings to the AU header encoding field.
var encodings = map[audio.Encoding]uint32{
	audio.EncodingS8:     2,
	audio.EncodingPCM16:  3,
	audio.EncodingPCM24:  4,
	audio.EncodingPCM32:  5,
	audio.EncodingFloat:  6,
	audio.EncodingDouble: 7,
}

// Encoder writes Sun/NeXT AU files. Big-endian is the native layout; a
// little-endian file stores the magic byte-swapped.
type Encoder struct{}

func (Encoder) Check(p audio.Params) error {
	if _, ok := encodings[p.Encoding]; !ok {
		return audio.Unsupported(p, "AU holds S8, 16, 24, 32, FLOAT or DOUBLE samples")
	}
	return nil
}

func (e Encoder) NewSink(w io.WriteSeeker, p audio.Params) (audio.Sink, error) {
	if err := e.Check(p); err != nil {
		return nil, err
	}

	s := &sink{
		w:        w,
		order:    p.Order.Resolve(binary.BigEndian),
		encoding: p.Encoding,
	}

	header := make([]byte, headerSize)
	s.order.PutUint32(header[0:4], magic)
	s.order.PutUint32(header[4:8], headerSize)
	s.order.PutUint32(header[8:12], unknownSize)
	s.order.PutUint32(header[12:16], encodings[p.Encoding])
	s.order.PutUint32(header[16:20], uint32(p.SampleRate))
	s.order.PutUint32(header[20:24], uint32(p.Channels))

	if _, err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing au header: %w", err)
	}

	return s, nil
}

type sink struct {
	w        io.WriteSeeker
	order    binary.ByteOrder
	encoding audio.Encoding
	scratch  []byte
	written  int64
}

func (s *sink) WriteSamples(samples []float64) error {
	s.scratch = audio.AppendSamples(s.scratch[:0], s.order, s.encoding, samples)

	n, err := s.w.Write(s.scratch)
	s.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close patches the data size. Streams too long for the 32-bit field keep
// the unknown-size marker, which readers treat as "until end of file".
func (s *sink) Close() error {
	if s.written >= unknownSize {
		return nil
	}

	if _, err := s.w.Seek(8, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	size := make([]byte, 4)
	s.order.PutUint32(size, uint32(s.written))
	if _, err := s.w.Write(size); err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := s.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
