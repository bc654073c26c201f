// SPDX-License-Identifier: EPL-2.0

// Package audio defines the output side of the renderer: the Sink a stream
// of samples is written into and the Encoders that produce one per
// container format.
//
// This package contains the core building blocks:
//   - Sink interface for ordered sample output
//   - Encoder interface and a Registry keyed by container Format
//   - Params, Format, Encoding and ByteOrder describing a stream
//   - Create and Open, which wrap an encoder with error kinds and an
//     exactly-once Close
//   - PutSample and AppendSamples for containers that pack bytes by hand
//
// # Sink Interface
//
//	type Sink interface {
//	    WriteSamples(samples []float64) error
//	    Close() error
//	}
//
// Samples are mono float64 values, nominally in [-1,1]. The sink never
// reorders them: the file holds every buffer in the order it was written.
//
// # Opening a Stream
//
//	reg := audio.NewRegistry()
//	reg.Register(audio.FormatWAV, wav.Encoder{})
//
//	sink, err := audio.Create("out.wav", audio.Params{
//	    Channels:   1,
//	    SampleRate: 44100,
//	    Format:     audio.FormatWAV,
//	    Encoding:   audio.EncodingPCM16,
//	}, reg)
//	if err != nil {
//	    // errors.Is(err, audio.ErrUnsupportedFormat) or audio.ErrSinkOpen
//	}
//	defer sink.Close()
//
// # Error Handling
//
// Failures carry one of the sentinel kinds so callers can match them with
// errors.Is:
//   - ErrUnsupportedFormat: the encoder rejects the encoding or byte order
//   - ErrSinkOpen, ErrSinkWrite, ErrSinkClose: I/O failures by phase
//   - ErrUnknownFormat, ErrUnknownEncoding: unparseable names
package audio
