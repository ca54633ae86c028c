// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/sndstream/audio"
)

func grow[T any](buf *[]T, n int) []T {
	if cap(*buf) < n {
		*buf = make([]T, n)
	}
	return (*buf)[:n]
}

// readFrames reads up to frames frames into p in the stream's kind.
func (s *Stream) readFrames(p []byte, frames int) (int64, error) {
	n := frames * s.info.Channels
	ch := int64(s.info.Channels)

	switch s.kind {
	case audio.Int16:
		buf := grow(&s.i16, n)
		got, err := s.h.ReadInt16(buf)
		putInt16(p, buf[:got*ch])
		return got, err
	case audio.Int32:
		buf := grow(&s.i32, n)
		got, err := s.h.ReadInt32(buf)
		putInt32(p, buf[:got*ch])
		return got, err
	case audio.Float32:
		buf := grow(&s.f32, n)
		got, err := s.h.ReadFloat32(buf)
		putFloat32(p, buf[:got*ch])
		return got, err
	case audio.Float64:
		buf := grow(&s.f64, n)
		got, err := s.h.ReadFloat64(buf)
		putFloat64(p, buf[:got*ch])
		return got, err
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidKind, s.kind)
}

// writeFrames writes the first frames frames of p.
func (s *Stream) writeFrames(p []byte, frames int) (int64, error) {
	n := frames * s.info.Channels

	switch s.kind {
	case audio.Int16:
		buf := grow(&s.i16, n)
		getInt16(buf, p)
		return s.h.WriteInt16(buf)
	case audio.Int32:
		buf := grow(&s.i32, n)
		getInt32(buf, p)
		return s.h.WriteInt32(buf)
	case audio.Float32:
		buf := grow(&s.f32, n)
		getFloat32(buf, p)
		return s.h.WriteFloat32(buf)
	case audio.Float64:
		buf := grow(&s.f64, n)
		getFloat64(buf, p)
		return s.h.WriteFloat64(buf)
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidKind, s.kind)
}

func putInt16(dst []byte, src []int16) {
	for i, v := range src {
		binary.NativeEndian.PutUint16(dst[2*i:], uint16(v))
	}
}

func putInt32(dst []byte, src []int32) {
	for i, v := range src {
		binary.NativeEndian.PutUint32(dst[4*i:], uint32(v))
	}
}

func putFloat32(dst []byte, src []float32) {
	for i, v := range src {
		binary.NativeEndian.PutUint32(dst[4*i:], math.Float32bits(v))
	}
}

func putFloat64(dst []byte, src []float64) {
	for i, v := range src {
		binary.NativeEndian.PutUint64(dst[8*i:], math.Float64bits(v))
	}
}

func getInt16(dst []int16, src []byte) {
	for i := range dst {
		dst[i] = int16(binary.NativeEndian.Uint16(src[2*i:]))
	}
}

func getInt32(dst []int32, src []byte) {
	for i := range dst {
		dst[i] = int32(binary.NativeEndian.Uint32(src[4*i:]))
	}
}

func getFloat32(dst []float32, src []byte) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.NativeEndian.Uint32(src[4*i:]))
	}
}

func getFloat64(dst []float64, src []byte) {
	for i := range dst {
		dst[i] = math.Float64frombits(binary.NativeEndian.Uint64(src[8*i:]))
	}
}
