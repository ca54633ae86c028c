// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"

	"github.com/ik5/sndstream/audio"
)

var (
	// ErrNotLinear indicates a subtype this package cannot store
	ErrNotLinear = fmt.Errorf("%w: not linear pcm", audio.ErrUnsupportedEncoding)

	// ErrMissingInfo indicates a RAW stream opened without rate, channels or subtype
	ErrMissingInfo = fmt.Errorf("%w: raw streams need sample rate, channels and subtype", audio.ErrUnrecognizedFormat)

	// ErrSeekOutOfRange indicates a seek past either end of the region
	ErrSeekOutOfRange = fmt.Errorf("%w: seek out of range", audio.ErrInvalidOperation)

	// ErrBufferNotAligned indicates a buffer that is not a whole number of frames
	ErrBufferNotAligned = fmt.Errorf("%w: buffer is not a multiple of the channel count", audio.ErrInvalidOperation)
)
