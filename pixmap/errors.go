// SPDX-License-Identifier: EPL-2.0

package pixmap

import "errors"

var (
	ErrTruncatedImage = errors.New("image file too short")
	ErrSizeMismatch   = errors.New("pixel data does not match image size")
)
