// SPDX-License-Identifier: EPL-2.0

package blob

import (
	"errors"
	"fmt"

	"github.com/ik5/sndstream/audio"
)

var (
	ErrNotFound     = errors.New("object not found")
	ErrEmptyKey     = errors.New("empty object key")
	ErrUploadClosed = fmt.Errorf("%w: upload already closed", audio.ErrInvalidOperation)
)
