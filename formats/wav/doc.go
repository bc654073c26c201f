// SPDX-License-Identifier: EPL-2.0

// Package wav provides a WAV file sink.
//
// Little-endian integer and FLOAT files are written by the
// github.com/go-audio/wav encoder. DOUBLE and big-endian files use a
// hand-built header that is rewritten on Close. Either way the destination
// must be an io.WriteSeeker.
//
// # Supported Encodings
//
//   - U8 (the only 8-bit layout RIFF allows)
//   - PCM 16, 24 and 32 bit
//   - FLOAT and DOUBLE (IEEE 754, format tag 3)
//
// Files are little-endian RIFF by default. Big-endian output produces a
// RIFX file, whose header fields are big-endian too.
//
// # Writing WAV Files
//
//	file, _ := os.Create("output.wav")
//	sink, err := wav.Encoder{}.NewSink(file, audio.Params{
//	    Channels:   1,
//	    SampleRate: 44100,
//	    Format:     audio.FormatWAV,
//	    Encoding:   audio.EncodingPCM16,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	sink.WriteSamples(samples)
//	sink.Close()
//	file.Close()
//
// # Error Handling
//
// Rejections wrap audio.ErrUnsupportedFormat. S8 also wraps ErrSignedBytes;
// HALF has no WAVE format tag.
package wav
