// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"

	"github.com/ik5/sndstream/audio"
)

var (
	// ErrNotMP3File indicates go-mp3 could not find a frame header
	ErrNotMP3File = fmt.Errorf("%w: not an MPEG audio stream", audio.ErrUnrecognizedFormat)

	// ErrNotSeekable indicates a stream whose length go-mp3 could not determine
	ErrNotSeekable = fmt.Errorf("%w: mp3 stream is not seekable", audio.ErrInvalidOperation)

	// ErrReadOnly indicates an attempt to encode MPEG audio
	ErrReadOnly = fmt.Errorf("%w: mp3 encoding", audio.ErrFormatUnsupported)
)
