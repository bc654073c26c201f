// SPDX-License-Identifier: EPL-2.0

// Package raw writes bare sample data with no container around it.
//
// All encodings are available, including HALF (IEEE 754 binary16 via
// github.com/x448/float16), which no other container here accepts. Samples
// are little-endian unless big or cpu order is requested. Readers must be
// told the rate, encoding and byte order out of band.
package raw
