// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"io"

	"github.com/ik5/sndstream/audio"
)

// Codec reads MPEG-1/2 Layer III streams. Encoding is not supported.
type Codec struct{}

func (Codec) Container() audio.Container { return audio.ContainerMPEG }

// Probe accepts an ID3v2 tag or a Layer III frame sync.
func (Codec) Probe(header []byte) bool {
	if len(header) >= 3 && string(header[:3]) == "ID3" {
		return true
	}
	return len(header) >= 2 &&
		header[0] == 0xFF &&
		header[1]&0xE0 == 0xE0 &&
		(header[1]>>1)&0x03 == 0x01
}

func (Codec) Decode(r io.ReadSeeker, _ audio.Info) (audio.FrameReader, error) {
	return decode(r)
}

func (Codec) Check(audio.Info) bool { return false }

func (Codec) Encode(io.WriteSeeker, audio.Info) (audio.FrameWriter, error) {
	return nil, ErrReadOnly
}
