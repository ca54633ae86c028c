// SPDX-License-Identifier: EPL-2.0

package native

import (
	"fmt"

	"github.com/ik5/sndstream/audio"
)

// Name is the registry name of the libsndfile engine.
const Name = "native"

var (
	// ErrUnavailable is returned by the stub built without the sndfile tag
	ErrUnavailable = fmt.Errorf("%w: libsndfile support not enabled (build with -tags sndfile)", audio.ErrNoEngine)

	ErrNilVirtualIO = fmt.Errorf("%w: nil virtual io binding", audio.ErrInvalidOperation)
	ErrWrongMode    = fmt.Errorf("%w: operation not allowed in this mode", audio.ErrInvalidOperation)
	ErrUnaligned    = fmt.Errorf("%w: buffer is not a multiple of the channel count", audio.ErrInvalidOperation)
	ErrSeek         = fmt.Errorf("%w: seek rejected", audio.ErrInvalidOperation)
)
