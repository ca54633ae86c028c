// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/formats/pcm"
	"github.com/ik5/sndstream/utils"
)

// go-mp3 always emits 16-bit little-endian stereo
const (
	channels      = 2
	bytesPerFrame = 4
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	SampleRate() int
	Length() int64
}

type reader struct {
	dec  mp3Reader
	info audio.Info
	buf  []byte
}

func newReader(dec mp3Reader) *reader {
	info := audio.Info{
		SampleRate: dec.SampleRate(),
		Channels:   channels,
		Container:  audio.ContainerMPEG,
		Subtype:    audio.SubtypeMPEGLayerIII,
		Endian:     audio.EndianFile,
	}
	if n := dec.Length(); n >= 0 {
		info.Frames = n / bytesPerFrame
		info.Seekable = true
	}

	return &reader{dec: dec, info: info}
}

func (r *reader) Info() audio.Info { return r.info }

func (r *reader) String(audio.StringKind) string { return "" }

func (r *reader) ReadFrames(dst []float64) (int, error) {
	if len(dst)%channels != 0 {
		return 0, pcm.ErrBufferNotAligned
	}
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) / channels * bytesPerFrame
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	r.buf = r.buf[:need]

	n, err := io.ReadFull(r.dec, r.buf)
	frames := n / bytesPerFrame
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		if frames == 0 {
			return 0, fmt.Errorf("%w: %v", audio.ErrMalformedData, err)
		}
	}
	if frames == 0 {
		return 0, io.EOF
	}

	if _, err := utils.DecodePCM(dst, r.buf[:frames*bytesPerFrame], audio.SubtypePCM16, binary.LittleEndian); err != nil {
		return 0, err
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
	if _, err := r.dec.Seek(frame*bytesPerFrame, io.SeekStart); err != nil {
		return fmt.Errorf("seeking mp3 stream: %w", err)
	}
	return nil
}

func decode(rs io.ReadSeeker) (*reader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding mp3 stream: %w", err)
	}

	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMP3File, err)
	}
	return newReader(dec), nil
}
