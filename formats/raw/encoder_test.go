// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"bytes"
	"testing"

	"github.com/csm/gray2snd/audio"
	"github.com/csm/gray2snd/internal/audiotest"
)

func TestSink_Encodings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		enc   audio.Encoding
		order audio.ByteOrder
		in    []float64
		want  []byte
	}{
		{"u8", audio.EncodingU8, audio.OrderFile, []float64{0, 1, -1}, []byte{0x80, 0xff, 0x01}},
		{"s8", audio.EncodingS8, audio.OrderFile, []float64{0, 1}, []byte{0x00, 0x7f}},
		{"pcm16 default little", audio.EncodingPCM16, audio.OrderFile, []float64{1}, []byte{0xff, 0x7f}},
		{"pcm16 big", audio.EncodingPCM16, audio.OrderBig, []float64{1}, []byte{0x7f, 0xff}},
		{"half", audio.EncodingHalf, audio.OrderFile, []float64{-2}, []byte{0x00, 0xc0}},
		{"float big", audio.EncodingFloat, audio.OrderBig, []float64{0.5}, []byte{0x3f, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := audio.Params{Channels: 1, SampleRate: 8000, Format: audio.FormatRAW, Encoding: tt.enc, Order: tt.order}
			if err := (Encoder{}).Check(p); err != nil {
				t.Fatalf("Check() error = %v", err)
			}

			ws := &audiotest.WriteSeeker{}
			sink, err := Encoder{}.NewSink(ws, p)
			if err != nil {
				t.Fatalf("NewSink() error = %v", err)
			}
			if err := sink.WriteSamples(tt.in); err != nil {
				t.Fatalf("WriteSamples() error = %v", err)
			}
			if err := sink.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			if !bytes.Equal(ws.Bytes(), tt.want) {
				t.Errorf("output = % x, want % x", ws.Bytes(), tt.want)
			}
		})
	}
}

func TestSink_ReusesScratchAcrossWrites(t *testing.T) {
	t.Parallel()

	ws := &audiotest.WriteSeeker{}
	p := audio.Params{Channels: 1, SampleRate: 8000, Format: audio.FormatRAW, Encoding: audio.EncodingPCM16}
	sink, err := Encoder{}.NewSink(ws, p)
	if err != nil {
		t.Fatalf("NewSink() error = %v", err)
	}

	for range 3 {
		if err := sink.WriteSamples([]float64{0, 0}); err != nil {
			t.Fatalf("WriteSamples() error = %v", err)
		}
	}

	if len(ws.Bytes()) != 12 {
		t.Errorf("wrote %d bytes, want 12", len(ws.Bytes()))
	}
}
