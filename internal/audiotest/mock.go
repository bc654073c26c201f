// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

// ErrInjected is returned by MemorySink when a failure was requested.
var ErrInjected = errors.New("audiotest: injected failure")

// MemorySink is a test helper that records every sample written to it.
// It implements the audio.Sink interface (without importing it to avoid cycles).
type MemorySink struct {
	Samples []float64
	// Buffers holds the length of each WriteSamples call, in order.
	Buffers []int
	// Closes counts Close calls.
	Closes int

	// FailWriteAt makes the n-th WriteSamples call (1-based) fail. Zero never fails.
	FailWriteAt int
	// FailClose makes Close return ErrInjected.
	FailClose bool
}

// NewMemorySink creates an empty recording sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) WriteSamples(samples []float64) error {
	if m.FailWriteAt > 0 && len(m.Buffers)+1 == m.FailWriteAt {
		return fmt.Errorf("write %d: %w", m.FailWriteAt, ErrInjected)
	}

	m.Buffers = append(m.Buffers, len(samples))
	m.Samples = append(m.Samples, samples...)
	return nil
}

func (m *MemorySink) Close() error {
	m.Closes++
	if m.FailClose {
		return ErrInjected
	}
	return nil
}

// WriteSeeker is an in-memory io.WriteSeeker for encoders that patch their
// headers on close.
type WriteSeeker struct {
	data   []byte
	offset int64
}

func (ws *WriteSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.data)) {
		ws.data = slices.Grow(ws.data, int(end)-len(ws.data))[:end]
	}
	n := copy(ws.data[ws.offset:], p)
	ws.offset += int64(n)
	return n, nil
}

func (ws *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = ws.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(ws.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	ws.offset = newOffset
	return newOffset, nil
}

// Bytes returns everything written so far.
func (ws *WriteSeeker) Bytes() []byte { return ws.data }

// Reader returns a ReadSeeker over the written bytes, for decoders.
func (ws *WriteSeeker) Reader() io.ReadSeeker {
	return &readSeeker{data: ws.data}
}

type readSeeker struct {
	data   []byte
	offset int64
}

func (rs *readSeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *readSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}

	rs.offset = newOffset
	return newOffset, nil
}
