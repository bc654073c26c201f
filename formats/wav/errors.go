// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var ErrSignedBytes = errors.New("WAV stores 8-bit samples unsigned")
