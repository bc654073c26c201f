// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"math"
	"slices"

	"github.com/csm/gray2snd/utils"
	"github.com/x448/float16"
)

// PutSample stores x into b using enc and order. b must hold at least
// enc.Size() bytes. Integer encodings clip to full scale, float encodings
// keep the value as is.
func PutSample(b []byte, order binary.ByteOrder, enc Encoding, x float64) {
	switch enc {
	case EncodingU8:
		b[0] = utils.FloatToU8(x)
	case EncodingS8:
		b[0] = byte(int8(utils.FloatToPCM(x, 8)))
	case EncodingPCM16:
		order.PutUint16(b, uint16(int16(utils.FloatToPCM(x, 16))))
	case EncodingPCM24:
		v := uint32(int32(utils.FloatToPCM(x, 24)))
		if order == binary.BigEndian {
			b[0], b[1], b[2] = byte(v>>16), byte(v>>8), byte(v)
		} else {
			b[0], b[1], b[2] = byte(v), byte(v>>8), byte(v>>16)
		}
	case EncodingPCM32:
		order.PutUint32(b, uint32(int32(utils.FloatToPCM(x, 32))))
	case EncodingFloat:
		order.PutUint32(b, math.Float32bits(float32(x)))
	case EncodingDouble:
		order.PutUint64(b, math.Float64bits(x))
	case EncodingHalf:
		order.PutUint16(b, float16.Fromfloat32(float32(x)).Bits())
	}
}

// AppendSamples encodes samples onto dst and returns the extended slice.
func AppendSamples(dst []byte, order binary.ByteOrder, enc Encoding, samples []float64) []byte {
	size := enc.Size()
	start := len(dst)
	dst = slices.Grow(dst, size*len(samples))[:start+size*len(samples)]
	for i, x := range samples {
		off := start + i*size
		PutSample(dst[off:off+size], order, enc, x)
	}
	return dst
}
