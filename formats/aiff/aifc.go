// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/csm/gray2snd/audio"
)

// AIFF-C layout for float samples: FORM/AIFC, FVER, a COMM chunk carrying a
// compression type and name, then SSND.
const (
	aifcVersion    = 0xA2805140 // FVER timestamp of AIFF-C version 1
	commSize       = 2 + 4 + 2 + 10 + 4 + 18
	aifcHeaderSize = 12 + 12 + 8 + commSize + 16
)

var compression = map[audio.Encoding]struct {
	id   string
	name string
}{
	audio.EncodingFloat:  {"fl32", "IEEE 32-bit float"},
	audio.EncodingDouble: {"fl64", "IEEE 64-bit float"},
}

// aifcSink writes float and double samples, which go-audio/aiff cannot
// store. Sizes and the frame count are rewritten on Close.
type aifcSink struct {
	w       io.WriteSeeker
	p       audio.Params
	scratch []byte
	written int64
}

func newAIFCSink(w io.WriteSeeker, p audio.Params) (*aifcSink, error) {
	if _, err := w.Write(aifcHeader(p, 0)); err != nil {
		return nil, fmt.Errorf("writing aifc header: %w", err)
	}

	return &aifcSink{w: w, p: p}, nil
}

func aifcHeader(p audio.Params, dataSize uint32) []byte {
	be := binary.BigEndian
	c := compression[p.Encoding]
	frameSize := p.Channels * p.Encoding.Size()

	header := make([]byte, aifcHeaderSize)

	copy(header[0:4], "FORM")
	be.PutUint32(header[4:8], aifcHeaderSize-8+dataSize)
	copy(header[8:12], "AIFC")

	copy(header[12:16], "FVER")
	be.PutUint32(header[16:20], 4)
	be.PutUint32(header[20:24], aifcVersion)

	comm := header[24:]
	copy(comm[0:4], "COMM")
	be.PutUint32(comm[4:8], commSize)
	be.PutUint16(comm[8:10], uint16(p.Channels))
	be.PutUint32(comm[10:14], dataSize/uint32(frameSize))
	be.PutUint16(comm[14:16], uint16(p.Encoding.BitDepth()))
	putExtended(comm[16:26], uint32(p.SampleRate))
	copy(comm[26:30], c.id)
	comm[30] = byte(len(c.name))
	copy(comm[31:], c.name)

	ssnd := header[24+8+commSize:]
	copy(ssnd[0:4], "SSND")
	be.PutUint32(ssnd[4:8], 8+dataSize)
	// offset and block size stay zero

	return header
}

// putExtended stores n as an 80-bit IEEE 754 extended float, the type AIFF
// uses for the sample rate.
func putExtended(b []byte, n uint32) {
	clear(b[:10])
	if n == 0 {
		return
	}

	width := bits.Len32(n)
	binary.BigEndian.PutUint16(b[0:2], uint16(16383+width-1))
	binary.BigEndian.PutUint64(b[2:10], uint64(n)<<(64-width))
}

func (s *aifcSink) WriteSamples(samples []float64) error {
	s.scratch = audio.AppendSamples(s.scratch[:0], binary.BigEndian, s.p.Encoding, samples)

	n, err := s.w.Write(s.scratch)
	s.written += int64(n)
	if err != nil {
		return fmt.Errorf("writing aifc frames: %w", err)
	}

	return nil
}

func (s *aifcSink) Close() error {
	size := uint32(min(s.written, int64(^uint32(0)-aifcHeaderSize)))

	if _, err := s.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}
	if _, err := s.w.Write(aifcHeader(s.p, size)); err != nil {
		return fmt.Errorf("finalizing aifc header: %w", err)
	}
	if _, err := s.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
