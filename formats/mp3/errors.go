// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var ErrUnknownLength = errors.New("decoded stream length is unknown")
