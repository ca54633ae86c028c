// SPDX-License-Identifier: EPL-2.0

//go:build !cgo || !sndfile

package native

import (
	"log/slog"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/vio"
)

// the placeholder is registered so that "native" resolves to ErrUnavailable
func init() {
	audio.Register(New())
}

// Available reports whether the binding was compiled in.
func Available() bool { return false }

// Version returns "" when the binding is not compiled in.
func Version() string { return "" }

// Engine is a placeholder that fails every open.
type Engine struct{}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger is accepted for source compatibility with the cgo build.
func WithLogger(*slog.Logger) Option {
	return func(*Engine) {}
}

func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Name() string { return Name }

// Available reports false; the registry never picks the placeholder as its
// default.
func (e *Engine) Available() bool { return false }

func (e *Engine) OpenPath(string, audio.Mode, *audio.Info) (audio.Handle, error) {
	return nil, ErrUnavailable
}

func (e *Engine) OpenVirtual(*vio.VirtualIO, audio.Mode, *audio.Info) (audio.Handle, error) {
	return nil, ErrUnavailable
}

func (e *Engine) FormatCheck(audio.Info) bool { return false }

func (e *Engine) ErrorMessage(code audio.ErrorCode) string { return code.String() }
