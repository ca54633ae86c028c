// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/wav"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/formats/pcm"
)

const (
	formatPCM        = 1
	formatFloat      = 3
	formatExtensible = 0xFFFE
)

// reader serves the data chunk and the LIST/INFO strings of a WAV stream.
type reader struct {
	*pcm.Reader
	meta map[audio.StringKind]string
}

func (r *reader) String(kind audio.StringKind) string {
	return r.meta[kind]
}

func decode(rs io.ReadSeeker) (*reader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav stream: %w", err)
	}

	// go-audio leaves Err() nil on empty input, so the RIFF/WAVE tag is
	// checked before handing the stream over
	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil || !(Codec{}).Probe(header) {
		return nil, ErrNotWavFile
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav stream: %w", err)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWavFile, err)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", audio.ErrMalformedData, dec.NumChans, dec.SampleRate)
	}

	// the RIFF size is not trusted: streaming writers leave it at 0 or
	// 0xFFFFFFFF and some encoders append chunks without updating it
	chunks, err := pcm.ScanChunks(rs, 12, math.MaxInt64, binary.LittleEndian)
	if err != nil {
		return nil, err
	}

	fmtChunk, ok := pcm.Find(chunks, "fmt ")
	if !ok {
		return nil, ErrMissingFmtChunk
	}
	body, err := pcm.ReadChunk(rs, fmtChunk)
	if err != nil {
		return nil, err
	}
	st, err := subtypeOf(int(dec.WavAudioFormat), int(dec.BitDepth), body)
	if err != nil {
		return nil, err
	}

	data, ok := pcm.Find(chunks, "data")
	if !ok {
		return nil, ErrMissingDataChunk
	}

	meta, err := readInfoList(rs)
	if err != nil {
		return nil, err
	}

	info := audio.Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Container:  audio.ContainerWAV,
		Subtype:    st,
		Endian:     audio.EndianFile,
		Seekable:   true,
	}
	rd, err := pcm.NewReader(rs, data.Offset, data.Size, info, binary.LittleEndian)
	if err != nil {
		return nil, err
	}

	return &reader{Reader: rd, meta: meta}, nil
}

func subtypeOf(tag, bits int, fmtBody []byte) (audio.Subtype, error) {
	if tag == formatExtensible {
		// the first two bytes of the sub-format GUID carry the real tag
		if len(fmtBody) < 26 {
			return 0, fmt.Errorf("%w: extensible fmt chunk of %d bytes", audio.ErrMalformedData, len(fmtBody))
		}
		tag = int(binary.LittleEndian.Uint16(fmtBody[24:26]))
	}

	switch tag {
	case formatPCM:
		switch bits {
		case 8:
			return audio.SubtypePCMU8, nil
		case 16:
			return audio.SubtypePCM16, nil
		case 24:
			return audio.SubtypePCM24, nil
		case 32:
			return audio.SubtypePCM32, nil
		}
	case formatFloat:
		switch bits {
		case 32:
			return audio.SubtypeFloat, nil
		case 64:
			return audio.SubtypeDouble, nil
		}
	default:
		return 0, fmt.Errorf("%w: %#x", ErrUnsupportedFormatTag, tag)
	}
	return 0, fmt.Errorf("%w: %d bits with tag %d", ErrUnsupportedBitDepth, bits, tag)
}
