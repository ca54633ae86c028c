// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"io"

	"github.com/ik5/sndstream/audio"
)

// Codec reads Ogg/Vorbis streams. Encoding is not supported.
type Codec struct{}

func (Codec) Container() audio.Container { return audio.ContainerOGG }

func (Codec) Probe(header []byte) bool {
	return len(header) >= 4 && string(header[:4]) == "OggS"
}

func (Codec) Decode(r io.ReadSeeker, _ audio.Info) (audio.FrameReader, error) {
	return decode(r)
}

func (Codec) Check(audio.Info) bool { return false }

func (Codec) Encode(io.WriteSeeker, audio.Info) (audio.FrameWriter, error) {
	return nil, ErrReadOnly
}
