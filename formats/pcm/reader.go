// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/utils"
)

// ByteOrder resolves e to a byte order, using def for EndianFile.
func ByteOrder(e audio.Endian, def binary.ByteOrder) binary.ByteOrder {
	switch e {
	case audio.EndianLittle:
		return binary.LittleEndian
	case audio.EndianBig:
		return binary.BigEndian
	case audio.EndianCPU:
		return binary.NativeEndian
	default:
		return def
	}
}

// Reader decodes frames from the region [start, start+size) of r.
type Reader struct {
	r     io.ReadSeeker
	info  audio.Info
	order binary.ByteOrder
	start int64
	bpf   int64

	pos int64
	buf []byte
}

// NewReader returns a Reader over size bytes at start. A trailing partial
// frame is ignored. info must carry Channels and a linear Subtype; its
// Frames field is recomputed from size.
func NewReader(r io.ReadSeeker, start, size int64, info audio.Info, order binary.ByteOrder) (*Reader, error) {
	ss := utils.SampleSize(info.Subtype)
	if ss == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotLinear, info.Subtype)
	}
	if info.Channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrMalformedData, info.Channels)
	}

	bpf := int64(ss * info.Channels)
	info.Frames = max(size, 0) / bpf

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to sample data: %w", err)
	}

	return &Reader{
		r:     r,
		info:  info,
		order: order,
		start: start,
		bpf:   bpf,
	}, nil
}

func (rd *Reader) Info() audio.Info { return rd.info }

// Position returns the current frame.
func (rd *Reader) Position() int64 { return rd.pos }

func (rd *Reader) String(audio.StringKind) string { return "" }

func (rd *Reader) ReadFrames(dst []float64) (int, error) {
	ch := rd.info.Channels
	if len(dst)%ch != 0 {
		return 0, ErrBufferNotAligned
	}

	frames := min(int64(len(dst)/ch), rd.info.Frames-rd.pos)
	if frames <= 0 {
		if len(dst) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}

	need := int(frames * rd.bpf)
	if cap(rd.buf) < need {
		rd.buf = make([]byte, need)
	}
	rd.buf = rd.buf[:need]

	n, err := io.ReadFull(rd.r, rd.buf)
	got := int64(n) / rd.bpf
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading sample data: %w", err)
	}
	if got == 0 {
		// the header promised more data than the store holds
		rd.info.Frames = rd.pos
		return 0, io.EOF
	}

	if _, err := utils.DecodePCM(dst, rd.buf[:got*rd.bpf], rd.info.Subtype, rd.order); err != nil {
		return 0, err
	}
	rd.pos += got

	// realign after a partial frame
	if int64(n) != got*rd.bpf {
		if _, err := rd.r.Seek(rd.start+rd.pos*rd.bpf, io.SeekStart); err != nil {
			return int(got), fmt.Errorf("seeking to sample data: %w", err)
		}
	}
	return int(got), nil
}

func (rd *Reader) SeekFrame(frame int64) error {
	if frame < 0 || frame > rd.info.Frames {
		return fmt.Errorf("%w: frame %d of %d", ErrSeekOutOfRange, frame, rd.info.Frames)
	}
	if _, err := rd.r.Seek(rd.start+frame*rd.bpf, io.SeekStart); err != nil {
		return fmt.Errorf("seeking to frame %d: %w", frame, err)
	}
	rd.pos = frame
	return nil
}
