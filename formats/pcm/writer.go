// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/utils"
)

// Writer encodes frames as headerless linear PCM.
type Writer struct {
	w        io.Writer
	subtype  audio.Subtype
	order    binary.ByteOrder
	channels int
	bpf      int

	frames int64
	buf    []byte
}

func NewWriter(w io.Writer, info audio.Info, order binary.ByteOrder) (*Writer, error) {
	ss := utils.SampleSize(info.Subtype)
	if ss == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotLinear, info.Subtype)
	}
	if info.Channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrFormatUnsupported, info.Channels)
	}

	return &Writer{
		w:        w,
		subtype:  info.Subtype,
		order:    order,
		channels: info.Channels,
		bpf:      ss * info.Channels,
	}, nil
}

// Frames returns the number of frames written so far.
func (wr *Writer) Frames() int64 { return wr.frames }

func (wr *Writer) WriteFrames(src []float64) (int, error) {
	if len(src)%wr.channels != 0 {
		return 0, ErrBufferNotAligned
	}

	frames := len(src) / wr.channels
	need := frames * wr.bpf
	if cap(wr.buf) < need {
		wr.buf = make([]byte, need)
	}
	wr.buf = wr.buf[:need]

	if _, err := utils.EncodePCM(wr.buf, src, wr.subtype, wr.order); err != nil {
		return 0, err
	}

	n, err := wr.w.Write(wr.buf)
	done := n / wr.bpf
	wr.frames += int64(done)
	if err != nil {
		return done, fmt.Errorf("writing sample data: %w", err)
	}
	return done, nil
}

func (wr *Writer) SetString(kind audio.StringKind, _ string) error {
	return fmt.Errorf("%w: raw streams carry no %s", audio.ErrInvalidOperation, kind)
}

func (wr *Writer) Flush() error { return nil }
func (wr *Writer) Close() error { return nil }
