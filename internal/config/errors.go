// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrBadSize           = errors.New("size must look like WIDTHxHEIGHT")
	ErrByteOrderConflict = errors.New("choose only one byte order")
)
