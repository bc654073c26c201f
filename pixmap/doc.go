// SPDX-License-Identifier: EPL-2.0

// Package pixmap loads raw 8-bit grayscale images.
//
// There is no header and no decoding: the file is width×height bytes, one
// per pixel, row by row from the top-left corner. The caller supplies the
// size.
package pixmap
