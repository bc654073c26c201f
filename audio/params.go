// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Format identifies an output container.
type Format int

const (
	FormatWAV Format = iota
	FormatAIFF
	FormatAU
	FormatRAW
)

var formatNames = map[Format]string{
	FormatWAV:  "WAV",
	FormatAIFF: "AIFF",
	FormatAU:   "AU",
	FormatRAW:  "RAW",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat accepts the container names AU, AIFF, RAW and WAV in any case.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encoding identifies how each sample is stored.
type Encoding int

const (
	EncodingPCM16 Encoding = iota
	EncodingU8
	EncodingS8
	EncodingPCM24
	EncodingPCM32
	EncodingFloat
	EncodingDouble
	EncodingHalf
)

var encodingNames = map[Encoding]string{
	EncodingU8:     "U8",
	EncodingS8:     "S8",
	EncodingPCM16:  "16",
	EncodingPCM24:  "24",
	EncodingPCM32:  "32",
	EncodingFloat:  "FLOAT",
	EncodingDouble: "DOUBLE",
	EncodingHalf:   "HALF",
}

func (e Encoding) String() string {
	if s, ok := encodingNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// ParseEncoding accepts U8, S8, 16, 24, 32, FLOAT, DOUBLE and HALF in any case.
func ParseEncoding(s string) (Encoding, error) {
	for e, name := range encodingNames {
		if strings.EqualFold(s, name) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// BitDepth is the number of bits one sample occupies on disk.
func (e Encoding) BitDepth() int {
	switch e {
	case EncodingU8, EncodingS8:
		return 8
	case EncodingPCM16, EncodingHalf:
		return 16
	case EncodingPCM24:
		return 24
	case EncodingPCM32, EncodingFloat:
		return 32
	case EncodingDouble:
		return 64
	}
	return 0
}

// Size is BitDepth in bytes.
func (e Encoding) Size() int { return e.BitDepth() / 8 }

// IsFloat reports whether samples are stored as IEEE floating point.
func (e Encoding) IsFloat() bool {
	return e == EncodingFloat || e == EncodingDouble || e == EncodingHalf
}

// ByteOrder selects sample endianness. OrderFile leaves the choice to the
// container.
type ByteOrder int

const (
	OrderFile ByteOrder = iota
	OrderLittle
	OrderBig
	OrderCPU
)

func (o ByteOrder) String() string {
	switch o {
	case OrderFile:
		return "file"
	case OrderLittle:
		return "little"
	case OrderBig:
		return "big"
	case OrderCPU:
		return "cpu"
	}
	return fmt.Sprintf("ByteOrder(%d)", int(o))
}

// Resolve maps o to a concrete byte order, using fileDefault for OrderFile.
// OrderCPU resolves to whichever of little or big endian the host uses.
func (o ByteOrder) Resolve(fileDefault binary.ByteOrder) binary.ByteOrder {
	switch o {
	case OrderLittle:
		return binary.LittleEndian
	case OrderBig:
		return binary.BigEndian
	case OrderCPU:
		if HostIsLittleEndian() {
			return binary.LittleEndian
		}
		return binary.BigEndian
	}
	return fileDefault
}

// HostIsLittleEndian reports the native byte order of the running machine.
func HostIsLittleEndian() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	return probe[0] == 1
}

// Params describe the stream a Sink writes.
type Params struct {
	Channels   int
	SampleRate int
	Format     Format
	Encoding   Encoding
	Order      ByteOrder
}

func (p Params) validate() error {
	if p.Channels != 1 {
		return Unsupported(p, fmt.Sprintf("%d channels", p.Channels))
	}
	if p.SampleRate < 1 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, p.SampleRate)
	}
	if _, ok := encodingNames[p.Encoding]; !ok {
		return fmt.Errorf("%w: %v", ErrUnknownEncoding, p.Encoding)
	}
	if p.Order < OrderFile || p.Order > OrderCPU {
		return fmt.Errorf("%w: %v", ErrUnknownByteOrder, p.Order)
	}
	return nil
}

// Unsupported is the error encoders return when they reject p.
func Unsupported(p Params, why string) error {
	return fmt.Errorf("%w: %v samples in %v (%s)", ErrUnsupportedFormat, p.Encoding, p.Format, why)
}
