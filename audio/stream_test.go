// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/csm/gray2snd/internal/audiotest"
)

var errStub = errors.New("stub failure")

// stubEncoder writes headerless big-endian samples and can be told to fail.
type stubEncoder struct {
	failOpen  bool
	failWrite bool
	failClose bool
}

func (e stubEncoder) Check(p Params) error {
	if p.Encoding == EncodingHalf {
		return Unsupported(p, "stub")
	}
	return nil
}

func (e stubEncoder) NewSink(w io.WriteSeeker, p Params) (Sink, error) {
	if e.failOpen {
		return nil, errStub
	}
	return &stubSink{w: w, p: p, enc: e}, nil
}

type stubSink struct {
	w   io.WriteSeeker
	p   Params
	enc stubEncoder
}

func (s *stubSink) WriteSamples(samples []float64) error {
	if s.enc.failWrite {
		return errStub
	}
	_, err := s.w.Write(AppendSamples(nil, binary.BigEndian, s.p.Encoding, samples))
	return err
}

func (s *stubSink) Close() error {
	if s.enc.failClose {
		return errStub
	}
	return nil
}

func stubParams() Params {
	return Params{Channels: 1, SampleRate: 8000, Format: FormatRAW, Encoding: EncodingPCM16}
}

func TestCreate_WritesFile(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(FormatRAW, stubEncoder{})

	path := filepath.Join(t.TempDir(), "out.raw")
	sink, err := Create(path, stubParams(), reg)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := sink.WriteSamples([]float64{0, 1}); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := sink.WriteSamples([]float64{-1}); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) != 6 {
		t.Errorf("file size = %d, want 6", len(data))
	}
}

func TestCreate_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name string
		enc  stubEncoder
		path string
		p    Params
		want error
	}{
		{"unsupported encoding", stubEncoder{}, filepath.Join(dir, "a.raw"), Params{Channels: 1, SampleRate: 8000, Format: FormatRAW, Encoding: EncodingHalf}, ErrUnsupportedFormat},
		{"missing directory", stubEncoder{}, filepath.Join(dir, "missing", "b.raw"), stubParams(), ErrSinkOpen},
		{"encoder refuses", stubEncoder{failOpen: true}, filepath.Join(dir, "c.raw"), stubParams(), ErrSinkOpen},
	}

	for _, tt := range tests {
		reg := NewRegistry()
		reg.Register(FormatRAW, tt.enc)

		_, err := Create(tt.path, tt.p, reg)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Create() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestStream_WriteAndCloseErrors(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(FormatRAW, stubEncoder{failWrite: true, failClose: true})

	sink, err := Open(&audiotest.WriteSeeker{}, stubParams(), reg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	err = sink.WriteSamples([]float64{0})
	if !errors.Is(err, ErrSinkWrite) || !errors.Is(err, errStub) {
		t.Errorf("WriteSamples() error = %v, want ErrSinkWrite wrapping the cause", err)
	}

	err = sink.Close()
	if !errors.Is(err, ErrSinkClose) {
		t.Errorf("Close() error = %v, want ErrSinkClose", err)
	}

	// Close releases the stream once; later calls are no-ops.
	if err := sink.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
	if err := sink.WriteSamples([]float64{0}); !errors.Is(err, ErrSinkWrite) {
		t.Errorf("WriteSamples() after Close error = %v, want ErrSinkWrite", err)
	}
}
