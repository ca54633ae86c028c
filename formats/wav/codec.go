// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/sndstream/audio"
)

// Codec reads and writes RIFF/WAVE streams.
type Codec struct{}

func (Codec) Container() audio.Container { return audio.ContainerWAV }

func (Codec) Probe(header []byte) bool {
	return len(header) >= 12 &&
		string(header[0:4]) == "RIFF" &&
		string(header[8:12]) == "WAVE"
}

func (Codec) Decode(r io.ReadSeeker, _ audio.Info) (audio.FrameReader, error) {
	return decode(r)
}

// Check accepts 16, 24 and 32-bit PCM and 32-bit float, little endian.
func (Codec) Check(info audio.Info) bool {
	if info.Container != audio.ContainerWAV || info.Channels <= 0 || info.SampleRate <= 0 {
		return false
	}
	if info.Endian != audio.EndianFile && info.Endian != audio.EndianLittle {
		return false
	}

	switch info.Subtype {
	case audio.SubtypePCM16, audio.SubtypePCM24, audio.SubtypePCM32, audio.SubtypeFloat:
		return true
	}
	return false
}

func (c Codec) Encode(w io.WriteSeeker, info audio.Info) (audio.FrameWriter, error) {
	if !c.Check(info) {
		return nil, fmt.Errorf("%w: %s", audio.ErrFormatUnsupported, info.Format())
	}
	return newWriter(w, info), nil
}
