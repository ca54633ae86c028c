// SPDX-License-Identifier: EPL-2.0

package sndstream

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/stream"
)

// DefaultBufferFrames is the number of frames Copy moves per round.
const DefaultBufferFrames = 4096

var ErrFrameMismatch = fmt.Errorf("%w: streams exchange different frames", audio.ErrInvalidOperation)

// Copy reads src to its end and writes every frame to dst. Both streams must
// exchange the same sample kind and channel count. It returns the number of
// frames written.
func Copy(dst, src *stream.Stream) (int64, error) {
	return CopyBuffer(dst, src, nil)
}

// CopyBuffer is like Copy but stages frames in buf. buf is cut down to whole
// frames; a buffer shorter than one frame is replaced by a fresh one.
func CopyBuffer(dst, src *stream.Stream, buf []byte) (int64, error) {
	if src.Kind() != dst.Kind() || src.Info().Channels != dst.Info().Channels {
		return 0, fmt.Errorf("%w: %s x%d into %s x%d", ErrFrameMismatch,
			src.Kind(), src.Info().Channels, dst.Kind(), dst.Info().Channels)
	}

	bpf := src.BytesPerFrame()
	if len(buf) < bpf {
		buf = make([]byte, DefaultBufferFrames*bpf)
	}
	buf = buf[:len(buf)/bpf*bpf]

	var frames int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			frames += int64(w / bpf)
			if werr != nil {
				return frames, werr
			}
		}

		switch {
		case errors.Is(err, io.EOF):
			return frames, nil
		case err != nil:
			return frames, err
		case n == 0:
			return frames, io.ErrNoProgress
		}
	}
}

// ConvertFile decodes the sound at srcPath and writes it to dstPath in the
// format DeriveInfo picks. kind is the sample representation the frames
// travel in.
func ConvertFile(dstPath, srcPath string, to audio.Info, kind audio.SampleKind, opts ...stream.Option) (int64, error) {
	src, err := stream.OpenRead(srcPath, kind, opts...)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	info, err := DeriveInfo(dstPath, src.Info(), to)
	if err != nil {
		return 0, err
	}

	dst, err := stream.OpenWrite(dstPath, info, kind, opts...)
	if err != nil {
		return 0, err
	}

	if _, err := CopyStrings(dst, src); err != nil {
		dst.Close()
		return 0, err
	}

	frames, err := Copy(dst, src)
	if cerr := dst.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	return frames, err
}

// CopyStrings attaches the metadata strings of src to dst and returns how
// many were taken. Strings the destination container has no room for are
// skipped.
func CopyStrings(dst, src *stream.Stream) (int, error) {
	n := 0
	for _, kind := range audio.StringKinds {
		v, err := src.String(kind)
		if err != nil {
			return n, err
		}
		if v == "" {
			continue
		}

		err = dst.SetString(kind, v)
		switch {
		case err == nil:
			n++
		case errors.Is(err, audio.ErrClosed), errors.Is(err, stream.ErrNotWritable):
			return n, err
		case errors.Is(err, audio.ErrInvalidOperation):
			// no field for kind in this container
		default:
			return n, err
		}
	}
	return n, nil
}

// DeriveInfo describes the output written to path when converting a sound
// described by from. Zero fields of to are filled in: the container from the
// extension of path, the subtype from the source when it is linear PCM and
// pcm_16 otherwise. The rate and channel count always come from the source.
func DeriveInfo(path string, from, to audio.Info) (audio.Info, error) {
	info := audio.Info{
		SampleRate: from.SampleRate,
		Channels:   from.Channels,
		Container:  to.Container,
		Subtype:    to.Subtype,
		Endian:     to.Endian,
	}

	if info.Container == 0 {
		c, err := audio.ParseContainer(filepath.Ext(path))
		if err != nil {
			return info, err
		}
		info.Container = c
	}
	if info.Subtype == 0 {
		info.Subtype = audio.SubtypePCM16
		if from.Subtype.IsLinear() {
			info.Subtype = from.Subtype
		}
	}
	return info, nil
}
