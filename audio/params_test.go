// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr error
	}{
		{in: "WAV", want: FormatWAV},
		{in: "wav", want: FormatWAV},
		{in: "Aiff", want: FormatAIFF},
		{in: "au", want: FormatAU},
		{in: "RAW", want: FormatRAW},
		{in: "mp3", wantErr: ErrUnknownFormat},
		{in: "", wantErr: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseFormat(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		want     Encoding
		bitDepth int
	}{
		{in: "U8", want: EncodingU8, bitDepth: 8},
		{in: "s8", want: EncodingS8, bitDepth: 8},
		{in: "16", want: EncodingPCM16, bitDepth: 16},
		{in: "24", want: EncodingPCM24, bitDepth: 24},
		{in: "32", want: EncodingPCM32, bitDepth: 32},
		{in: "float", want: EncodingFloat, bitDepth: 32},
		{in: "DOUBLE", want: EncodingDouble, bitDepth: 64},
		{in: "half", want: EncodingHalf, bitDepth: 16},
	}

	for _, tt := range tests {
		got, err := ParseEncoding(tt.in)
		if err != nil {
			t.Fatalf("ParseEncoding(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseEncoding(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if got.BitDepth() != tt.bitDepth {
			t.Errorf("%v.BitDepth() = %d, want %d", got, got.BitDepth(), tt.bitDepth)
		}
	}

	if _, err := ParseEncoding("12"); !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("ParseEncoding(\"12\") error = %v, want ErrUnknownEncoding", err)
	}
}

func TestByteOrder_Resolve(t *testing.T) {
	t.Parallel()

	if got := OrderFile.Resolve(binary.BigEndian); got != binary.BigEndian {
		t.Errorf("OrderFile.Resolve(big) = %v", got)
	}
	if got := OrderLittle.Resolve(binary.BigEndian); got != binary.LittleEndian {
		t.Errorf("OrderLittle.Resolve(big) = %v", got)
	}
	if got := OrderBig.Resolve(binary.LittleEndian); got != binary.BigEndian {
		t.Errorf("OrderBig.Resolve(little) = %v", got)
	}

	want := binary.ByteOrder(binary.BigEndian)
	if HostIsLittleEndian() {
		want = binary.LittleEndian
	}
	if got := OrderCPU.Resolve(nil); got != want {
		t.Errorf("OrderCPU.Resolve() = %v, want %v", got, want)
	}
}

func TestRegistry_Check(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(FormatRAW, stubEncoder{})

	ok := Params{Channels: 1, SampleRate: 8000, Format: FormatRAW, Encoding: EncodingPCM16}
	if err := reg.Check(ok); err != nil {
		t.Fatalf("Check(%+v) = %v, want nil", ok, err)
	}

	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"stereo", Params{Channels: 2, SampleRate: 8000, Format: FormatRAW}, ErrUnsupportedFormat},
		{"zero rate", Params{Channels: 1, Format: FormatRAW}, ErrUnsupportedFormat},
		{"unregistered", Params{Channels: 1, SampleRate: 8000, Format: FormatAU}, ErrUnsupportedFormat},
		{"bad encoding", Params{Channels: 1, SampleRate: 8000, Format: FormatRAW, Encoding: Encoding(99)}, ErrUnknownEncoding},
		{"bad order", Params{Channels: 1, SampleRate: 8000, Format: FormatRAW, Order: ByteOrder(9)}, ErrUnknownByteOrder},
	}

	for _, tt := range tests {
		if err := reg.Check(tt.p); !errors.Is(err, tt.want) {
			t.Errorf("%s: Check() = %v, want %v", tt.name, err, tt.want)
		}
	}
}
