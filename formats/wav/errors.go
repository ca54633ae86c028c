// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/sndstream/audio"
)

var (
	ErrNotWavFile           = fmt.Errorf("%w: not a WAV file", audio.ErrUnrecognizedFormat)
	ErrMissingFmtChunk      = fmt.Errorf("%w: WAV fmt chunk missing", audio.ErrMalformedData)
	ErrMissingDataChunk     = fmt.Errorf("%w: WAV data chunk missing", audio.ErrMalformedData)
	ErrUnsupportedFormatTag = fmt.Errorf("%w: WAV format tag", audio.ErrUnsupportedEncoding)
	ErrUnsupportedBitDepth  = fmt.Errorf("%w: WAV bit depth", audio.ErrUnsupportedEncoding)
	ErrUnsupportedString    = fmt.Errorf("%w: WAV has no field for this string", audio.ErrInvalidOperation)
)
