// SPDX-License-Identifier: EPL-2.0

// Command gray2snd turns a raw 8-bit grayscale image into a sound file.
//
// Usage:
//
//	gray2snd [options] --size=WxH in-file out-file
//
// Options must come before the file names. Each column of the image becomes
// --duration samples of audio; the top row is the highest frequency. Run
// with --help for the full option list. Defaults for the sample rate,
// duration, gain, format, sample type, transform and job count can also be
// set with GRAY2SND_* environment variables.
package main
