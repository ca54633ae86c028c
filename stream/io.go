// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"io"

	"github.com/ik5/sndstream/audio"
)

// Read fills p with whole frames. A p that is not frame aligned is read up
// to its last whole frame. Read returns 0, io.EOF at the end of the sound
// and 0, io.ErrShortBuffer when p cannot hold a single frame.
func (s *Stream) Read(p []byte) (int, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	if s.mode != audio.ModeRead {
		return 0, ErrNotReadable
	}
	if len(p) == 0 {
		return 0, nil
	}

	frames := len(p) / s.bpf
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}

	n, err := s.readFrames(p, frames)
	if err != nil {
		return int(n) * s.bpf, s.fail("read", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return int(n) * s.bpf, nil
}

// Write encodes the whole frames in p. A trailing partial frame, or frames
// the engine did not accept, are reported as io.ErrShortWrite.
func (s *Stream) Write(p []byte) (int, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	if s.mode != audio.ModeWrite {
		return 0, ErrNotWritable
	}
	if len(p) == 0 {
		return 0, nil
	}

	var n int64
	if frames := len(p) / s.bpf; frames > 0 {
		var err error
		n, err = s.writeFrames(p, frames)
		s.written += n
		if err != nil {
			return int(n) * s.bpf, s.fail("write", err)
		}
	}

	done := int(n) * s.bpf
	if done < len(p) {
		return done, io.ErrShortWrite
	}
	return done, nil
}

// Seek moves to the frame containing the byte offset and returns that
// frame's byte offset. offset is divided by BytesPerFrame before whence is
// applied, so an unaligned offset truncates toward zero: at 2 bytes per frame
// Seek(5, io.SeekStart) lands on byte 4 and Seek(-3, io.SeekEnd) lands two
// bytes before the end, not four.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	if whence == io.SeekCurrent && offset == 0 {
		return s.Position()
	}
	if !s.info.Seekable {
		return 0, ErrNotSeekable
	}

	frame, err := s.h.Seek(offset/int64(s.bpf), whence)
	if err != nil {
		return 0, s.fail("seek", err)
	}
	return frame * int64(s.bpf), nil
}

// Position returns the byte offset of the current frame.
func (s *Stream) Position() (int64, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}

	frame, err := s.h.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, s.fail("position", err)
	}
	return frame * int64(s.bpf), nil
}

// SetPosition seeks to an absolute byte offset, rounded down to a frame.
func (s *Stream) SetPosition(offset int64) (int64, error) {
	return s.Seek(offset, io.SeekStart)
}

// Length returns the size of the sound in bytes of the stream's kind. It is
// fixed in read mode and grows with every write in write mode.
func (s *Stream) Length() (int64, error) {
	if err := s.usable(); err != nil {
		return 0, err
	}
	return s.Frames() * int64(s.bpf), nil
}

// SetLength always fails.
func (s *Stream) SetLength(int64) error {
	if err := s.usable(); err != nil {
		return err
	}
	return ErrNotResizable
}

// Flush commits pending writes. It is a no-op in read mode.
func (s *Stream) Flush() error {
	if err := s.usable(); err != nil {
		return err
	}
	if s.mode != audio.ModeWrite {
		return nil
	}
	if err := s.h.Flush(); err != nil {
		return s.fail("flush", err)
	}
	return nil
}

// Close flushes pending writes, closes the session and releases the
// binding. Closing a closed or failed stream is a no-op.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}

	var errs []error
	if s.mode == audio.ModeWrite {
		if err := s.h.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.release(); err != nil {
		errs = append(errs, err)
	}

	s.logger.Debug("stream closed", "frames", s.Frames())
	return errors.Join(errs...)
}
