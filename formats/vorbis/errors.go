// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"

	"github.com/ik5/sndstream/audio"
)

var (
	// ErrNotVorbisFile indicates the stream is not Ogg/Vorbis
	ErrNotVorbisFile = fmt.Errorf("%w: not an Ogg/Vorbis stream", audio.ErrUnrecognizedFormat)

	// ErrNotSeekable indicates a stream whose length oggvorbis could not determine
	ErrNotSeekable = fmt.Errorf("%w: vorbis stream is not seekable", audio.ErrInvalidOperation)

	// ErrReadOnly indicates an attempt to encode Vorbis
	ErrReadOnly = fmt.Errorf("%w: vorbis encoding", audio.ErrFormatUnsupported)
)
