// SPDX-License-Identifier: EPL-2.0

// Package au writes Sun/NeXT AU (".snd") files.
//
// The 24-byte header carries the magic, the data offset, the data size, the
// encoding, the sample rate and the channel count. The size starts out as
// the "unknown" marker and is patched when the sink is closed.
//
// Supported encodings: S8, PCM 16/24/32, FLOAT and DOUBLE, in either byte
// order (big-endian unless asked otherwise).
package au
