// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/sndstream/audio"
)

var (
	// ErrNotAiffFile indicates the stream is not an AIFF or AIFF-C file
	ErrNotAiffFile = fmt.Errorf("%w: not an AIFF file", audio.ErrUnrecognizedFormat)

	// ErrMissingCommChunk indicates the COMM chunk is absent or too short
	ErrMissingCommChunk = fmt.Errorf("%w: AIFF COMM chunk missing", audio.ErrMalformedData)

	// ErrMissingSoundChunk indicates the SSND chunk is absent or too short
	ErrMissingSoundChunk = fmt.Errorf("%w: AIFF SSND chunk missing", audio.ErrMalformedData)

	// ErrUnsupportedCompression indicates an AIFF-C compression type other than linear PCM or float
	ErrUnsupportedCompression = fmt.Errorf("%w: AIFF-C compression", audio.ErrUnsupportedEncoding)

	// ErrUnsupportedBitDepth indicates a sample size this package cannot read
	ErrUnsupportedBitDepth = fmt.Errorf("%w: AIFF bit depth", audio.ErrUnsupportedEncoding)

	// ErrReadOnlyStrings indicates an attempt to set metadata on an AIFF writer
	ErrReadOnlyStrings = fmt.Errorf("%w: AIFF strings are read-only", audio.ErrInvalidOperation)
)
