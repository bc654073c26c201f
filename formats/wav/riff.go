// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/csm/gray2snd/audio"
)

const riffHeaderSize = 44

// riffSink writes the layouts go-audio/wav does not: 64-bit float samples
// and big-endian (RIFX) files. The header is written up front and rewritten
// with the final sizes on Close.
type riffSink struct {
	w       io.WriteSeeker
	p       audio.Params
	order   binary.ByteOrder
	scratch []byte
	written int64
}

func newRIFFSink(w io.WriteSeeker, p audio.Params, order binary.ByteOrder) (*riffSink, error) {
	if _, err := w.Write(riffHeader(p, order, 0)); err != nil {
		return nil, fmt.Errorf("writing wav header: %w", err)
	}

	return &riffSink{w: w, p: p, order: order}, nil
}

// riffHeader lays out RIFF/RIFX, a 16-byte fmt chunk and the data chunk
// header. Every field uses order, including the chunk sizes.
func riffHeader(p audio.Params, order binary.ByteOrder, dataSize uint32) []byte {
	size := p.Encoding.Size()
	tag := uint16(formatPCM)
	if p.Encoding.IsFloat() {
		tag = formatIEEEFloat
	}

	header := make([]byte, riffHeaderSize)

	copy(header[0:4], "RIFF")
	if order == binary.BigEndian {
		copy(header[0:4], "RIFX")
	}
	order.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	order.PutUint32(header[16:20], 16)
	order.PutUint16(header[20:22], tag)
	order.PutUint16(header[22:24], uint16(p.Channels))
	order.PutUint32(header[24:28], uint32(p.SampleRate))
	order.PutUint32(header[28:32], uint32(p.SampleRate*p.Channels*size))
	order.PutUint16(header[32:34], uint16(p.Channels*size))
	order.PutUint16(header[34:36], uint16(p.Encoding.BitDepth()))

	copy(header[36:40], "data")
	order.PutUint32(header[40:44], dataSize)

	return header
}

func (s *riffSink) WriteSamples(samples []float64) error {
	s.scratch = audio.AppendSamples(s.scratch[:0], s.order, s.p.Encoding, samples)

	n, err := s.w.Write(s.scratch)
	s.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close rewrites the header with the data size. Data beyond the 32-bit
// RIFF limit keeps a saturated size.
func (s *riffSink) Close() error {
	size := uint32(min(s.written, int64(^uint32(0)-36)))

	if _, err := s.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := s.w.Write(riffHeader(s.p, s.order, size)); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}
	if _, err := s.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
