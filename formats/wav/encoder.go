// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/formats/pcm"
	"github.com/ik5/sndstream/utils"
)

// writer feeds frames to a go-audio encoder. Sizes in the header are only
// patched on Close.
type writer struct {
	enc      *wav.Encoder
	channels int
	bits     int
	float    bool

	buf   *goaudio.IntBuffer
	meta  *wav.Metadata
	wrote bool
}

func newWriter(w io.WriteSeeker, info audio.Info) *writer {
	bits := info.Subtype.BitDepth()
	tag := formatPCM
	if info.Subtype.IsFloat() {
		tag = formatFloat
	}

	return &writer{
		enc:      wav.NewEncoder(w, info.SampleRate, bits, info.Channels, tag),
		channels: info.Channels,
		bits:     bits,
		float:    info.Subtype.IsFloat(),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: info.Channels,
				SampleRate:  info.SampleRate,
			},
			SourceBitDepth: bits,
		},
	}
}

func (w *writer) WriteFrames(src []float64) (int, error) {
	if len(src)%w.channels != 0 {
		return 0, pcm.ErrBufferNotAligned
	}

	if cap(w.buf.Data) < len(src) {
		w.buf.Data = make([]int, len(src))
	}
	w.buf.Data = w.buf.Data[:len(src)]

	for i, x := range src {
		if w.float {
			// go-audio stores 32-bit samples verbatim, so pass the IEEE bits
			w.buf.Data[i] = int(int32(math.Float32bits(float32(x))))
		} else {
			w.buf.Data[i] = int(utils.FromFloat(x, w.bits))
		}
	}

	if err := w.enc.Write(w.buf); err != nil {
		return 0, fmt.Errorf("writing wav frames: %w", err)
	}
	w.wrote = true
	return len(src) / w.channels, nil
}

func (w *writer) SetString(kind audio.StringKind, value string) error {
	if w.meta == nil {
		w.meta = &wav.Metadata{}
	}
	return setMetadata(w.meta, kind, value)
}

func (w *writer) Flush() error { return nil }

func (w *writer) Close() error {
	if !w.wrote {
		// an empty write still emits the header
		w.buf.Data = w.buf.Data[:0]
		if err := w.enc.Write(w.buf); err != nil {
			return fmt.Errorf("writing wav header: %w", err)
		}
	}
	if w.meta != nil {
		w.enc.Metadata = w.meta
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}
	return nil
}
