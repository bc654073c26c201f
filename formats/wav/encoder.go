// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/csm/gray2snd/audio"
	"github.com/csm/gray2snd/utils"
)

// WAVE format tags written to the fmt chunk.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// Encoder writes RIFF/WAVE files. Little-endian integer and 32-bit float
// files go through go-audio/wav; DOUBLE and big-endian (RIFX) files are laid
// out by riffSink.
type Encoder struct{}

func (Encoder) Check(p audio.Params) error {
	switch p.Encoding {
	case audio.EncodingU8, audio.EncodingPCM16, audio.EncodingPCM24, audio.EncodingPCM32,
		audio.EncodingFloat, audio.EncodingDouble:
		return nil
	case audio.EncodingS8:
		return fmt.Errorf("%w: %w", ErrSignedBytes, audio.Unsupported(p, "8-bit WAV is unsigned"))
	}
	return audio.Unsupported(p, "WAV holds U8, 16, 24, 32, FLOAT or DOUBLE samples")
}

func (e Encoder) NewSink(w io.WriteSeeker, p audio.Params) (audio.Sink, error) {
	if err := e.Check(p); err != nil {
		return nil, err
	}

	order := p.Order.Resolve(binary.LittleEndian)
	if order == binary.BigEndian || p.Encoding == audio.EncodingDouble {
		return newRIFFSink(w, p, order)
	}

	tag := formatPCM
	if p.Encoding == audio.EncodingFloat {
		tag = formatIEEEFloat
	}

	bitDepth := p.Encoding.BitDepth()
	return &sink{
		enc:      wav.NewEncoder(w, p.SampleRate, bitDepth, p.Channels, tag),
		encoding: p.Encoding,
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: p.Channels,
				SampleRate:  p.SampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}, nil
}

type sink struct {
	enc      *wav.Encoder
	encoding audio.Encoding
	buf      *goaudio.IntBuffer
}

func (s *sink) WriteSamples(samples []float64) error {
	if len(samples) == 0 {
		return nil
	}

	if cap(s.buf.Data) < len(samples) {
		s.buf.Data = make([]int, len(samples))
	}
	s.buf.Data = s.buf.Data[:len(samples)]

	bitDepth := s.encoding.BitDepth()
	for i, x := range samples {
		switch s.encoding {
		case audio.EncodingU8:
			s.buf.Data[i] = int(utils.FloatToU8(x))
		case audio.EncodingFloat:
			// go-audio stores 32-bit words verbatim, so the float travels as its bit pattern
			s.buf.Data[i] = int(int32(math.Float32bits(float32(x))))
		default:
			s.buf.Data[i] = utils.FloatToPCM(x, bitDepth)
		}
	}

	if err := s.enc.Write(s.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *sink) Close() error {
	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
