// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/utils"
	"github.com/ik5/sndstream/vio"
)

// session implements audio.Handle over a FrameReader or FrameWriter.
type session struct {
	mode   audio.Mode
	v      *vio.VirtualIO
	info   audio.Info
	r      audio.FrameReader
	w      audio.FrameWriter
	closer io.Closer
	logger *slog.Logger

	pos     int64
	code    audio.ErrorCode
	strings map[audio.StringKind]string
	scratch []float64
	closed  bool
}

func newSession(mode audio.Mode, v *vio.VirtualIO, info audio.Info, r audio.FrameReader, w audio.FrameWriter, logger *slog.Logger) *session {
	return &session{
		mode:    mode,
		v:       v,
		info:    info,
		r:       r,
		w:       w,
		logger:  logger,
		strings: make(map[audio.StringKind]string),
	}
}

// fail records err as the session error and returns it as an EngineError.
func (s *session) fail(err error) error {
	err = storeError(s.v, err)

	var ee *audio.EngineError
	if errors.As(err, &ee) {
		s.code = ee.Code
	}
	return err
}

func (s *session) check(mode audio.Mode) error {
	if s.closed {
		return audio.ErrClosed
	}
	if s.mode != mode {
		return fmt.Errorf("%w: session opened for %s", ErrWrongMode, s.mode)
	}
	return nil
}

func (s *session) frames(n int) (int, error) {
	ch := s.info.Channels
	if n%ch != 0 {
		return 0, fmt.Errorf("%w: %d samples, %d channels", ErrUnaligned, n, ch)
	}
	return n / ch, nil
}

func (s *session) buffer(n int) []float64 {
	if cap(s.scratch) < n {
		s.scratch = make([]float64, n)
	}
	return s.scratch[:n]
}

func (s *session) Seek(frames int64, whence int) (int64, error) {
	if s.closed {
		return 0, audio.ErrClosed
	}
	if whence == io.SeekCurrent && frames == 0 {
		return s.pos, nil
	}
	if s.mode != audio.ModeRead || !s.info.Seekable {
		return s.pos, ErrNotSeekable
	}

	var target int64
	switch whence {
	case io.SeekStart:
		target = frames
	case io.SeekCurrent:
		target = s.pos + frames
	case io.SeekEnd:
		target = s.info.Frames + frames
	default:
		return s.pos, fmt.Errorf("%w: %d", ErrBadWhence, whence)
	}
	if target < 0 || target > s.info.Frames {
		return s.pos, fmt.Errorf("%w: frame %d of %d", ErrSeekRange, target, s.info.Frames)
	}

	if err := s.r.SeekFrame(target); err != nil {
		if errors.Is(err, audio.ErrInvalidOperation) {
			return s.pos, err
		}
		return s.pos, s.fail(err)
	}
	s.pos = target
	return target, nil
}

// read fills dst from the decoder. End of data is 0 frames with a nil error.
func (s *session) read(dst []float64) (int64, error) {
	if err := s.check(audio.ModeRead); err != nil {
		return 0, err
	}
	want, err := s.frames(len(dst))
	if err != nil {
		return 0, err
	}

	var got int
	ch := s.info.Channels
	for got < want {
		n, err := s.r.ReadFrames(dst[got*ch:])
		got += n
		s.pos += int64(n)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return int64(got), s.fail(err)
		}
		if n == 0 {
			break
		}
	}
	return int64(got), nil
}

func (s *session) write(src []float64) (int64, error) {
	if err := s.check(audio.ModeWrite); err != nil {
		return 0, err
	}
	if _, err := s.frames(len(src)); err != nil {
		return 0, err
	}

	n, err := s.w.WriteFrames(src)
	s.pos += int64(n)
	if err != nil {
		return int64(n), s.fail(err)
	}
	return int64(n), nil
}

func readAs[T int16 | int32 | float32](s *session, buf []T, conv func(float64) T) (int64, error) {
	tmp := s.buffer(len(buf))
	n, err := s.read(tmp)
	for i := range int(n) * s.info.Channels {
		buf[i] = conv(tmp[i])
	}
	return n, err
}

func writeAs[T int16 | int32 | float32](s *session, buf []T, conv func(T) float64) (int64, error) {
	if err := s.check(audio.ModeWrite); err != nil {
		return 0, err
	}
	tmp := s.buffer(len(buf))
	for i, v := range buf {
		tmp[i] = conv(v)
	}
	return s.write(tmp)
}

func (s *session) ReadInt16(buf []int16) (int64, error) {
	return readAs(s, buf, utils.Float64ToInt16)
}

func (s *session) ReadInt32(buf []int32) (int64, error) {
	return readAs(s, buf, utils.Float64ToInt32)
}

func (s *session) ReadFloat32(buf []float32) (int64, error) {
	return readAs(s, buf, func(x float64) float32 { return float32(x) })
}

func (s *session) ReadFloat64(buf []float64) (int64, error) {
	return s.read(buf)
}

func (s *session) WriteInt16(buf []int16) (int64, error) {
	return writeAs(s, buf, utils.Int16ToFloat64)
}

func (s *session) WriteInt32(buf []int32) (int64, error) {
	return writeAs(s, buf, utils.Int32ToFloat64)
}

func (s *session) WriteFloat32(buf []float32) (int64, error) {
	return writeAs(s, buf, func(x float32) float64 { return float64(x) })
}

func (s *session) WriteFloat64(buf []float64) (int64, error) {
	return s.write(buf)
}

func (s *session) String(kind audio.StringKind) string {
	if s.closed {
		return ""
	}
	if s.mode == audio.ModeRead {
		return s.r.String(kind)
	}
	return s.strings[kind]
}

func (s *session) SetString(kind audio.StringKind, value string) error {
	if err := s.check(audio.ModeWrite); err != nil {
		return err
	}
	if err := s.w.SetString(kind, value); err != nil {
		return err
	}
	s.strings[kind] = value
	return nil
}

func (s *session) Flush() error {
	if s.closed {
		return audio.ErrClosed
	}
	if s.mode != audio.ModeWrite {
		return nil
	}
	if err := s.w.Flush(); err != nil {
		return s.fail(err)
	}
	return nil
}

func (s *session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.w != nil {
		if err := s.w.Close(); err != nil {
			errs = append(errs, s.fail(err))
		}
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			errs = append(errs, s.fail(err))
		}
	}
	s.logger.Debug("session closed", "mode", s.mode, "frames", s.pos)
	return errors.Join(errs...)
}

func (s *session) Error() audio.ErrorCode {
	return s.code
}
