// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/formats/aiff"
	"github.com/ik5/sndstream/formats/mp3"
	"github.com/ik5/sndstream/formats/pcm"
	"github.com/ik5/sndstream/formats/vorbis"
	"github.com/ik5/sndstream/formats/wav"
	"github.com/ik5/sndstream/vio"
)

// Name is the registry name of the pure-Go engine.
const Name = "go"

// probeSize is enough to recognize every supported container.
const probeSize = 12

func init() {
	audio.Register(New())
}

// Engine implements audio.Engine with the codecs from formats/.
type Engine struct {
	codecs []audio.Codec
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCodec adds c, replacing any codec for the same container.
func WithCodec(c audio.Codec) Option {
	return func(e *Engine) {
		for i, have := range e.codecs {
			if have.Container() == c.Container() {
				e.codecs[i] = c
				return
			}
		}
		e.codecs = append(e.codecs, c)
	}
}

// WithLogger sets the logger for the engine and the bindings it creates
// for paths.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New returns an engine with the WAV, AIFF, MP3, Vorbis and RAW codecs.
func New(opts ...Option) *Engine {
	e := &Engine{
		codecs: []audio.Codec{
			wav.Codec{},
			aiff.Codec{},
			mp3.Codec{},
			vorbis.Codec{},
			pcm.Codec{},
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.logger = e.logger.With("engine", Name)
	return e
}

func (e *Engine) Name() string { return Name }

// Containers lists the containers the engine has a codec for.
func (e *Engine) Containers() []audio.Container {
	out := make([]audio.Container, 0, len(e.codecs))
	for _, c := range e.codecs {
		out = append(out, c.Container())
	}
	return out
}

func (e *Engine) codec(c audio.Container) (audio.Codec, bool) {
	for _, have := range e.codecs {
		if have.Container() == c {
			return have, true
		}
	}
	return nil, false
}

func (e *Engine) FormatCheck(info audio.Info) bool {
	if info.Validate() != nil {
		return false
	}
	c, ok := e.codec(info.Container)
	return ok && c.Check(info)
}

func (e *Engine) ErrorMessage(code audio.ErrorCode) string {
	return code.String()
}

func (e *Engine) OpenPath(path string, mode audio.Mode, info *audio.Info) (audio.Handle, error) {
	var (
		f   *os.File
		err error
	)
	switch mode {
	case audio.ModeRead:
		f, err = os.Open(path)
	case audio.ModeWrite:
		f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	if err != nil {
		return nil, audio.NewEngineError(audio.CodeSystem, err.Error())
	}

	v, err := vio.FromStream(f, vio.WithLogger(e.logger))
	if err != nil {
		f.Close()
		return nil, err
	}

	s, err := e.open(v, mode, info)
	if err != nil {
		f.Close()
		if mode == audio.ModeWrite {
			os.Remove(path)
		}
		return nil, err
	}
	s.closer = f
	return s, nil
}

func (e *Engine) OpenVirtual(v *vio.VirtualIO, mode audio.Mode, info *audio.Info) (audio.Handle, error) {
	s, err := e.open(v, mode, info)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (e *Engine) open(v *vio.VirtualIO, mode audio.Mode, info *audio.Info) (*session, error) {
	if v == nil {
		return nil, ErrNilVirtualIO
	}
	if info == nil {
		info = &audio.Info{}
	}

	switch mode {
	case audio.ModeRead:
		return e.openRead(v, info)
	case audio.ModeWrite:
		return e.openWrite(v, info)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
}

func (e *Engine) openRead(v *vio.VirtualIO, info *audio.Info) (*session, error) {
	file := v.File()

	c, err := e.pick(file, info.Container)
	if err != nil {
		return nil, storeError(v, err)
	}

	r, err := c.Decode(file, *info)
	if err != nil {
		return nil, storeError(v, err)
	}

	*info = r.Info()
	e.logger.Debug("opened for reading",
		"format", info.Format(),
		"frames", info.Frames,
		"sampleRate", info.SampleRate,
		"channels", info.Channels,
	)
	return newSession(audio.ModeRead, v, *info, r, nil, e.logger), nil
}

func (e *Engine) openWrite(v *vio.VirtualIO, info *audio.Info) (*session, error) {
	if !e.FormatCheck(*info) {
		return nil, fmt.Errorf("%w: %s", audio.ErrFormatUnsupported, info.Format())
	}
	c, _ := e.codec(info.Container)

	w, err := c.Encode(v.File(), *info)
	if err != nil {
		return nil, storeError(v, err)
	}

	info.Frames = 0
	info.Seekable = false
	e.logger.Debug("opened for writing",
		"format", info.Format(),
		"sampleRate", info.SampleRate,
		"channels", info.Channels,
	)
	return newSession(audio.ModeWrite, v, *info, nil, w, e.logger), nil
}

// pick returns the codec for c, probing the stream when c is unset.
func (e *Engine) pick(file io.ReadSeeker, c audio.Container) (audio.Codec, error) {
	if c != 0 {
		if codec, ok := e.codec(c); ok {
			return codec, nil
		}
		return nil, audio.NewEngineError(audio.CodeUnsupportedEncoding,
			fmt.Sprintf("no %s codec in the %s engine", c, Name))
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	header := make([]byte, probeSize)
	n, err := io.ReadFull(file, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	for _, codec := range e.codecs {
		if codec.Probe(header[:n]) {
			return codec, nil
		}
	}
	return nil, audio.NewEngineError(audio.CodeUnrecognizedFormat, "")
}

// storeError classifies err, preferring CodeSystem when the binding
// swallowed a callback fault.
func storeError(v *vio.VirtualIO, err error) error {
	if fault := v.TakeErr(); fault != nil {
		return asEngineError(fmt.Errorf("%w (%v)", err, fault), audio.CodeSystem)
	}
	return asEngineError(err, audio.CodeNone)
}
