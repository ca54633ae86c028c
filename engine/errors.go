// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"

	"github.com/ik5/sndstream/audio"
)

var (
	ErrNilVirtualIO = fmt.Errorf("%w: nil virtual io binding", audio.ErrInvalidOperation)
	ErrInvalidMode  = fmt.Errorf("%w: open mode", audio.ErrInvalidOperation)
	ErrWrongMode    = fmt.Errorf("%w: operation not allowed in this mode", audio.ErrInvalidOperation)
	ErrNotSeekable  = fmt.Errorf("%w: session is not seekable", audio.ErrInvalidOperation)
	ErrSeekRange    = fmt.Errorf("%w: seek out of range", audio.ErrInvalidOperation)
	ErrUnaligned    = fmt.Errorf("%w: buffer is not a multiple of the channel count", audio.ErrInvalidOperation)
	ErrBadWhence    = fmt.Errorf("%w: whence", audio.ErrInvalidOperation)
)

// asEngineError converts a codec or store failure into an EngineError.
// Misuse errors are returned unchanged.
func asEngineError(err error, code audio.ErrorCode) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, audio.ErrInvalidOperation) || errors.Is(err, audio.ErrFormatUnsupported) {
		return err
	}

	var ee *audio.EngineError
	if errors.As(err, &ee) {
		return ee
	}
	if code == audio.CodeNone {
		code = audio.CodeOf(err)
	}
	return audio.NewEngineError(code, err.Error())
}
