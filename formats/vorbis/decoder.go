// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/formats/pcm"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	SetPosition(pos int64) error
	Read([]float32) (int, error)
}

type reader struct {
	dec  oggReader
	info audio.Info
	buf  []float32
	eof  bool
}

func newReader(dec oggReader) *reader {
	info := audio.Info{
		SampleRate: dec.SampleRate(),
		Channels:   dec.Channels(),
		Container:  audio.ContainerOGG,
		Subtype:    audio.SubtypeVorbis,
		Endian:     audio.EndianFile,
	}
	// oggvorbis reports 0 when the input cannot seek
	if n := dec.Length(); n > 0 {
		info.Frames = n
		info.Seekable = true
	}

	return &reader{dec: dec, info: info}
}

func (r *reader) Info() audio.Info { return r.info }

func (r *reader) String(audio.StringKind) string { return "" }

// ReadFrames fills dst with whole frames. oggvorbis returns values, not
// frames, and may stop short at packet boundaries, so reads are repeated
// until dst is full or the stream ends.
func (r *reader) ReadFrames(dst []float64) (int, error) {
	ch := r.info.Channels
	if len(dst)%ch != 0 {
		return 0, pcm.ErrBufferNotAligned
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if cap(r.buf) < len(dst) {
		r.buf = make([]float32, len(dst))
	}
	r.buf = r.buf[:len(dst)]

	total := 0
	for total < len(dst) && !r.eof {
		n, err := r.dec.Read(r.buf[total:])
		total += n
		if errors.Is(err, io.EOF) {
			r.eof = true
			break
		}
		if err != nil {
			if total < ch {
				return 0, fmt.Errorf("%w: %v", audio.ErrMalformedData, err)
			}
			break
		}
		if n == 0 {
			break
		}
	}

	frames := total / ch
	if frames == 0 {
		return 0, io.EOF
	}
	for i, v := range r.buf[:frames*ch] {
		dst[i] = float64(v)
	}
	return frames, nil
}

func (r *reader) SeekFrame(frame int64) error {
	if !r.info.Seekable {
		return ErrNotSeekable
	}
	if frame < 0 || frame > r.info.Frames {
		return fmt.Errorf("%w: frame %d of %d", pcm.ErrSeekOutOfRange, frame, r.info.Frames)
	}
	if err := r.dec.SetPosition(frame); err != nil {
		return fmt.Errorf("seeking vorbis stream: %w", err)
	}
	r.eof = false
	return nil
}

func decode(rs io.ReadSeeker) (*reader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding vorbis stream: %w", err)
	}

	dec, err := oggvorbis.NewReader(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotVorbisFile, err)
	}
	if dec.Channels() <= 0 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrMalformedData, dec.Channels())
	}
	return newReader(dec), nil
}
