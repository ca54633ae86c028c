// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"fmt"

	"github.com/ik5/sndstream/audio"
)

var (
	ErrNotReadable  = fmt.Errorf("%w: stream is not open for reading", audio.ErrInvalidOperation)
	ErrNotWritable  = fmt.Errorf("%w: stream is not open for writing", audio.ErrInvalidOperation)
	ErrNotSeekable  = fmt.Errorf("%w: stream is not seekable", audio.ErrInvalidOperation)
	ErrNotResizable = fmt.Errorf("%w: stream length cannot be changed", audio.ErrInvalidOperation)
	ErrInvalidKind  = fmt.Errorf("%w: sample kind", audio.ErrInvalidOperation)
	ErrNilVirtualIO = fmt.Errorf("%w: nil virtual io binding", audio.ErrInvalidOperation)
	ErrNilBuffer    = fmt.Errorf("%w: nil buffer", audio.ErrInvalidOperation)

	// ErrDead is returned after an engine failure closed the session
	ErrDead = fmt.Errorf("%w: stream failed", audio.ErrClosed)
)
