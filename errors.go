// SPDX-License-Identifier: EPL-2.0

package audfd

import "errors"

var (
	ErrInvalidHandle    = errors.New("invalid audio handle")
	ErrWriteUnsupported = errors.New("audio handles are read-only")
)
