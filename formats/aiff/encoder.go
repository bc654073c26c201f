// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/csm/gray2snd/audio"
	"github.com/csm/gray2snd/utils"
)

// aiffWriter is an interface for aiff.Encoder to allow testing
type aiffWriter interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// Encoder writes integer AIFF files through go-audio/aiff, and AIFF-C files
// for FLOAT and DOUBLE samples.
type Encoder struct{}

func (Encoder) Check(p audio.Params) error {
	switch p.Encoding {
	case audio.EncodingS8, audio.EncodingPCM16, audio.EncodingPCM24, audio.EncodingPCM32,
		audio.EncodingFloat, audio.EncodingDouble:
	case audio.EncodingU8:
		return fmt.Errorf("%w: %w", ErrUnsignedSamples, audio.Unsupported(p, "AIFF samples are signed"))
	default:
		return audio.Unsupported(p, "AIFF holds S8, 16, 24, 32, FLOAT or DOUBLE samples")
	}

	if p.Order.Resolve(binary.BigEndian) != binary.BigEndian {
		return fmt.Errorf("%w: %w", ErrLittleEndian, audio.Unsupported(p, "AIFF is big-endian"))
	}

	return nil
}

func (e Encoder) NewSink(w io.WriteSeeker, p audio.Params) (audio.Sink, error) {
	if err := e.Check(p); err != nil {
		return nil, err
	}

	if p.Encoding.IsFloat() {
		return newAIFCSink(w, p)
	}

	bitDepth := p.Encoding.BitDepth()
	return newSink(aiff.NewEncoder(w, p.SampleRate, bitDepth, p.Channels), p), nil
}

// sink adapts an aiffWriter to audio.Sink
type sink struct {
	enc      aiffWriter
	bitDepth int
	buf      *goaudio.IntBuffer
}

func newSink(enc aiffWriter, p audio.Params) *sink {
	bitDepth := p.Encoding.BitDepth()
	return &sink{
		enc:      enc,
		bitDepth: bitDepth,
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: p.Channels,
				SampleRate:  p.SampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}
}

func (s *sink) WriteSamples(samples []float64) error {
	if len(samples) == 0 {
		return nil
	}

	// Resize buffer if needed
	if cap(s.buf.Data) < len(samples) {
		s.buf.Data = make([]int, len(samples))
	}
	s.buf.Data = s.buf.Data[:len(samples)]

	for i, x := range samples {
		s.buf.Data[i] = utils.FloatToPCM(x, s.bitDepth)
	}

	if err := s.enc.Write(s.buf); err != nil {
		return fmt.Errorf("writing aiff frames: %w", err)
	}

	return nil
}

func (s *sink) Close() error {
	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("finalizing aiff header: %w", err)
	}

	return nil
}
