// SPDX-License-Identifier: EPL-2.0

// Package aiff provides an AIFF (Audio Interchange File Format) sink.
//
// Integer files are laid out by github.com/go-audio/aiff. FLOAT and DOUBLE
// samples need AIFF-C (compression types fl32 and fl64), whose header this
// package writes itself. Sizes are patched when the sink is closed, so the
// destination must be an io.WriteSeeker.
//
// # Supported Encodings
//
//   - S8, PCM 16, 24 and 32 bit
//   - FLOAT and DOUBLE, as AIFF-C
//   - Mono
//   - Any sample rate
//
// AIFF samples are signed and big-endian. U8 output and little-endian byte
// orders are rejected with audio.ErrUnsupportedFormat.
//
// # Writing AIFF Files
//
//	file, _ := os.Create("output.aiff")
//	sink, err := aiff.Encoder{}.NewSink(file, audio.Params{
//	    Channels:   1,
//	    SampleRate: 44100,
//	    Format:     audio.FormatAIFF,
//	    Encoding:   audio.EncodingPCM24,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer sink.Close()
//
// # Error Handling
//
//   - ErrUnsignedSamples: U8 was requested
//   - ErrLittleEndian: little-endian output was requested
//
// Both are returned wrapped together with audio.ErrUnsupportedFormat.
package aiff
