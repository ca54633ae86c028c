// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"io"
	"log/slog"

	"github.com/ik5/sndstream/audio"
)

// Option configures a Stream at open time.
type Option func(*options)

type options struct {
	engine     audio.Engine
	engineName string
	logger     *slog.Logger
	hint       audio.Info
	closer     io.Closer
}

// WithEngine opens the stream with e instead of the default engine.
func WithEngine(e audio.Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithEngineName resolves the engine by name in the global registry.
func WithEngineName(name string) Option {
	return func(o *options) {
		o.engineName = name
	}
}

// WithLogger sets the parent logger. The stream adds its own id.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithInfo describes a source that cannot describe itself, such as RAW
// sample data. It is ignored by the write constructors.
func WithInfo(info audio.Info) Option {
	return func(o *options) {
		o.hint = info
	}
}

// WithCloser hands ownership of the backing store to the stream. c is closed
// after the session, on Close or after a failure. After a failure a c with a
// Discard() method is discarded instead of closed.
func WithCloser(c io.Closer) Option {
	return func(o *options) {
		o.closer = c
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	if o.engine != nil {
		return o, nil
	}
	e, err := audio.LookupEngine(o.engineName)
	if err != nil {
		return o, err
	}
	o.engine = e
	return o, nil
}
