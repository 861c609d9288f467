// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidRate     = errors.New("sample rate must be positive")
	ErrInvalidChannels = errors.New("unsupported channel layout")
	ErrInvalidSrcSize  = errors.New("src size must be multiple of channels")
)
