// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/sndstream/audio"
)

// Codec handles headerless RAW streams. Raw data cannot be recognized, so
// Probe always fails and Decode relies on the caller's Info.
type Codec struct{}

func (Codec) Container() audio.Container { return audio.ContainerRAW }

func (Codec) Probe([]byte) bool { return false }

func (Codec) Decode(r io.ReadSeeker, hint audio.Info) (audio.FrameReader, error) {
	if hint.SampleRate <= 0 || hint.Channels <= 0 || hint.Subtype == 0 {
		return nil, ErrMissingInfo
	}

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("measuring raw stream: %w", err)
	}

	info := hint
	info.Container = audio.ContainerRAW
	info.Seekable = true
	return NewReader(r, 0, size, info, ByteOrder(hint.Endian, binary.LittleEndian))
}

func (Codec) Check(info audio.Info) bool {
	return info.Container == audio.ContainerRAW &&
		info.Channels > 0 && info.SampleRate > 0 &&
		info.Subtype.IsLinear()
}

func (c Codec) Encode(w io.WriteSeeker, info audio.Info) (audio.FrameWriter, error) {
	if !c.Check(info) {
		return nil, fmt.Errorf("%w: %s", audio.ErrFormatUnsupported, info.Format())
	}
	return NewWriter(w, info, ByteOrder(info.Endian, binary.LittleEndian))
}
