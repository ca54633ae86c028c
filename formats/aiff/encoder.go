// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/formats/pcm"
	"github.com/ik5/sndstream/utils"
)

// writer feeds frames to a go-audio encoder, which patches the COMM frame
// count and the SSND size on Close.
type writer struct {
	enc      *aiff.Encoder
	channels int
	bits     int

	buf   *goaudio.IntBuffer
	wrote bool
}

func newWriter(w io.WriteSeeker, info audio.Info) *writer {
	bits := info.Subtype.BitDepth()

	return &writer{
		enc:      aiff.NewEncoder(w, info.SampleRate, bits, info.Channels),
		channels: info.Channels,
		bits:     bits,
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
		w.buf.Data[i] = int(utils.FromFloat(x, w.bits))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return 0, fmt.Errorf("writing aiff frames: %w", err)
	}
	w.wrote = true
	return len(src) / w.channels, nil
}

func (w *writer) SetString(audio.StringKind, string) error {
	return ErrReadOnlyStrings
}

func (w *writer) Flush() error { return nil }

func (w *writer) Close() error {
	if !w.wrote {
		w.buf.Data = w.buf.Data[:0]
		if err := w.enc.Write(w.buf); err != nil {
			return fmt.Errorf("writing aiff header: %w", err)
		}
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("closing aiff encoder: %w", err)
	}
	return nil
}
