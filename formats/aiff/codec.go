// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/ik5/sndstream/audio"
)

// Codec reads AIFF and AIFF-C streams and writes AIFF.
type Codec struct{}

func (Codec) Container() audio.Container { return audio.ContainerAIFF }

func (Codec) Probe(header []byte) bool {
	if len(header) < 12 || string(header[0:4]) != "FORM" {
		return false
	}
	form := string(header[8:12])
	return form == "AIFF" || form == "AIFC"
}

func (Codec) Decode(r io.ReadSeeker, _ audio.Info) (audio.FrameReader, error) {
	return decode(r)
}

// Check accepts 16, 24 and 32-bit big endian PCM.
func (Codec) Check(info audio.Info) bool {
	if info.Container != audio.ContainerAIFF || info.Channels <= 0 || info.SampleRate <= 0 {
		return false
	}
	if info.Endian != audio.EndianFile && info.Endian != audio.EndianBig {
		return false
	}

	switch info.Subtype {
	case audio.SubtypePCM16, audio.SubtypePCM24, audio.SubtypePCM32:
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
