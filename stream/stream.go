// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/sndstream/audio"
	_ "github.com/ik5/sndstream/engine" // registers the pure-Go engine
	"github.com/ik5/sndstream/vio"
)

var (
	_ io.ReadWriteSeeker = (*Stream)(nil)
	_ io.Closer          = (*Stream)(nil)
)

// Stream is an open codec session seen as a byte stream of interleaved
// samples.
type Stream struct {
	id     uuid.UUID
	logger *slog.Logger
	engine audio.Engine

	h      audio.Handle
	v      *vio.VirtualIO
	closer io.Closer

	mode audio.Mode
	kind audio.SampleKind
	info audio.Info
	bpf  int

	written int64
	closed  bool
	failed  error

	i16 []int16
	i32 []int32
	f32 []float32
	f64 []float64
}

// OpenRead opens the file at path for reading samples of the given kind.
func OpenRead(path string, kind audio.SampleKind, opts ...Option) (*Stream, error) {
	return open(target{path: path}, audio.ModeRead, audio.Info{}, kind, opts)
}

// OpenReadVirtual reads through v. v stays referenced until Close.
func OpenReadVirtual(v *vio.VirtualIO, kind audio.SampleKind, opts ...Option) (*Stream, error) {
	if v == nil {
		return nil, ErrNilVirtualIO
	}
	if err := v.Check(); err != nil {
		return nil, err
	}
	return open(target{v: v}, audio.ModeRead, audio.Info{}, kind, opts)
}

// OpenReadMemory reads an encoded sound held in data.
func OpenReadMemory(data []byte, kind audio.SampleKind, opts ...Option) (*Stream, error) {
	v, err := vio.FromStream(vio.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	return OpenReadVirtual(v, kind, opts...)
}

// OpenWrite creates the file at path. info describes the sound to write;
// Frames and Seekable are ignored.
func OpenWrite(path string, info audio.Info, kind audio.SampleKind, opts ...Option) (*Stream, error) {
	return open(target{path: path}, audio.ModeWrite, info, kind, opts)
}

// OpenWriteVirtual writes through v. v stays referenced until Close.
func OpenWriteVirtual(v *vio.VirtualIO, info audio.Info, kind audio.SampleKind, opts ...Option) (*Stream, error) {
	if v == nil {
		return nil, ErrNilVirtualIO
	}
	if err := v.Check(); err != nil {
		return nil, err
	}
	return open(target{v: v}, audio.ModeWrite, info, kind, opts)
}

// CreateWAV creates a WAV file at path.
func CreateWAV(path string, sampleRate, channels int, subtype audio.Subtype, kind audio.SampleKind, opts ...Option) (*Stream, error) {
	return OpenWrite(path, describe(audio.ContainerWAV, sampleRate, channels, subtype), kind, opts...)
}

// CreateAIFF creates an AIFF file at path.
func CreateAIFF(path string, sampleRate, channels int, subtype audio.Subtype, kind audio.SampleKind, opts ...Option) (*Stream, error) {
	return OpenWrite(path, describe(audio.ContainerAIFF, sampleRate, channels, subtype), kind, opts...)
}

// CreateMemoryWAV writes a WAV file into buf. The bytes are complete once
// the stream is closed.
func CreateMemoryWAV(buf *vio.Buffer, sampleRate, channels int, subtype audio.Subtype, kind audio.SampleKind, opts ...Option) (*Stream, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	v, err := vio.FromStream(buf)
	if err != nil {
		return nil, err
	}
	return OpenWriteVirtual(v, describe(audio.ContainerWAV, sampleRate, channels, subtype), kind, opts...)
}

func describe(c audio.Container, sampleRate, channels int, subtype audio.Subtype) audio.Info {
	return audio.Info{
		SampleRate: sampleRate,
		Channels:   channels,
		Container:  c,
		Subtype:    subtype,
	}
}

type target struct {
	path string
	v    *vio.VirtualIO
}

func (t target) String() string {
	if t.v != nil {
		return "virtual io"
	}
	return t.path
}

func open(t target, mode audio.Mode, info audio.Info, kind audio.SampleKind, opts []Option) (*Stream, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}

	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	switch mode {
	case audio.ModeRead:
		info = o.hint
	case audio.ModeWrite:
		info.Frames = 0
		info.Seekable = false
		if !o.engine.FormatCheck(info) {
			return nil, fmt.Errorf("%w: %s %d Hz %d ch", audio.ErrFormatUnsupported,
				info.Format(), info.SampleRate, info.Channels)
		}
	}

	var h audio.Handle
	if t.v != nil {
		h, err = o.engine.OpenVirtual(t.v, mode, &info)
	} else {
		h, err = o.engine.OpenPath(t.path, mode, &info)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", t, err)
	}

	id := uuid.New()
	s := &Stream{
		id:     id,
		logger: o.logger.With("stream", id.String()),
		engine: o.engine,
		h:      h,
		v:      t.v,
		closer: o.closer,
		mode:   mode,
		kind:   kind,
		info:   info,
		bpf:    info.Channels * kind.Width(),
	}
	s.logger.Debug("stream opened",
		"target", t.String(),
		"engine", o.engine.Name(),
		"mode", mode,
		"kind", kind,
		"info", info.String(),
	)
	return s, nil
}

// ID identifies the stream in log records.
func (s *Stream) ID() uuid.UUID { return s.id }

// Info returns the descriptor negotiated at open time.
func (s *Stream) Info() audio.Info { return s.info }

// Kind returns the sample representation exchanged with the caller.
func (s *Stream) Kind() audio.SampleKind { return s.kind }

// Mode returns the open mode.
func (s *Stream) Mode() audio.Mode { return s.mode }

// Engine returns the engine that opened the stream.
func (s *Stream) Engine() audio.Engine { return s.engine }

// BytesPerFrame is Channels × Kind().Width().
func (s *Stream) BytesPerFrame() int { return s.bpf }

// CanRead reports whether the stream is open, alive and in read mode.
func (s *Stream) CanRead() bool { return s.usable() == nil && s.mode == audio.ModeRead }

// CanWrite reports whether the stream is open, alive and in write mode.
func (s *Stream) CanWrite() bool { return s.usable() == nil && s.mode == audio.ModeWrite }

// CanSeek reports whether the stream is open, alive and its source can
// reposition.
func (s *Stream) CanSeek() bool { return s.usable() == nil && s.info.Seekable }

// Frames returns the total frames in read mode and the frames written so far
// in write mode.
func (s *Stream) Frames() int64 {
	if s.mode == audio.ModeWrite {
		return s.written
	}
	return s.info.Frames
}

// Duration returns Frames() at the stream's sample rate.
func (s *Stream) Duration() time.Duration {
	info := s.info
	info.Frames = s.Frames()
	return info.Duration()
}

// Err returns the engine failure that killed the stream, if any.
func (s *Stream) Err() error { return s.failed }

func (s *Stream) usable() error {
	if s.failed != nil {
		return fmt.Errorf("%w: %w", ErrDead, s.failed)
	}
	if s.closed {
		return audio.ErrClosed
	}
	return nil
}

// fail kills the stream when err came from the engine. Other errors are
// returned unchanged.
func (s *Stream) fail(op string, err error) error {
	var ee *audio.EngineError
	if !errors.As(err, &ee) {
		return err
	}

	s.failed = err
	s.logger.Error("stream failed", "op", op, "code", ee.Code, "err", err)
	if rerr := s.release(); rerr != nil {
		s.logger.Warn("releasing failed stream", "err", rerr)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// release closes the session, then drops the binding and the owned store.
// A store owned by a failed stream is discarded when it supports it.
func (s *Stream) release() error {
	s.closed = true

	var errs []error
	if s.h != nil {
		if err := s.h.Close(); err != nil {
			errs = append(errs, err)
		}
		s.h = nil
	}
	s.v = nil
	if s.closer != nil {
		if d, ok := s.closer.(discarder); ok && s.failed != nil {
			d.Discard()
		} else if err := s.closer.Close(); err != nil {
			errs = append(errs, err)
		}
		s.closer = nil
	}
	return errors.Join(errs...)
}

// discarder is a backing store that can drop a partial result instead of
// committing it on Close.
type discarder interface {
	Discard()
}
