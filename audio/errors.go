// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported container/encoding combination")
	ErrUnknownFormat     = errors.New("unknown container format")
	ErrUnknownEncoding   = errors.New("unknown sample encoding")
	ErrUnknownByteOrder  = errors.New("unknown byte order")
	ErrSinkOpen          = errors.New("cannot open audio stream")
	ErrSinkWrite         = errors.New("cannot write audio stream")
	ErrSinkClose         = errors.New("cannot close audio stream")
)
