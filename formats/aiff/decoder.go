// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-audio/aiff"

	"github.com/ik5/sndstream/audio"
	"github.com/ik5/sndstream/formats/pcm"
)

var textChunks = map[string]audio.StringKind{
	"NAME": audio.StringTitle,
	"AUTH": audio.StringArtist,
	"(c) ": audio.StringCopyright,
	"ANNO": audio.StringComment,
}

// reader serves the SSND chunk and the text chunks of an AIFF stream.
type reader struct {
	*pcm.Reader
	meta map[audio.StringKind]string
}

func (r *reader) String(kind audio.StringKind) string {
	return r.meta[kind]
}

// comm is the part of the COMM chunk go-audio does not expose.
type comm struct {
	frames      int64
	compression string
}

func decode(rs io.ReadSeeker) (*reader, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding aiff stream: %w", err)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrMalformedData, err)
	}
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 || format.SampleRate <= 0 {
		return nil, ErrMissingCommChunk
	}

	form, err := formType(rs)
	if err != nil {
		return nil, err
	}
	chunks, err := pcm.ScanChunks(rs, 12, math.MaxInt64, binary.BigEndian)
	if err != nil {
		return nil, err
	}

	c, err := readComm(rs, chunks, form == "AIFC")
	if err != nil {
		return nil, err
	}
	st, order, err := subtypeOf(int(dec.BitDepth), c.compression)
	if err != nil {
		return nil, err
	}

	ssnd, ok := pcm.Find(chunks, "SSND")
	if !ok || ssnd.Size < 8 {
		return nil, ErrMissingSoundChunk
	}
	hdr, err := pcm.ReadChunk(rs, pcm.Chunk{ID: "SSND", Offset: ssnd.Offset, Size: 8})
	if err != nil {
		return nil, err
	}
	skip := int64(binary.BigEndian.Uint32(hdr[0:4]))
	start := ssnd.Offset + 8 + skip
	size := ssnd.Size - 8 - skip
	if size < 0 {
		return nil, fmt.Errorf("%w: SSND offset %d past chunk end", audio.ErrMalformedData, skip)
	}
	// trust COMM over SSND padding, unless a streaming writer left it at 0
	if c.frames > 0 {
		size = min(size, c.frames*int64(st.BitDepth()/8*format.NumChannels))
	}

	meta, err := readText(rs, chunks)
	if err != nil {
		return nil, err
	}

	info := audio.Info{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		Container:  audio.ContainerAIFF,
		Subtype:    st,
		Endian:     audio.EndianFile,
		Seekable:   true,
	}
	rd, err := pcm.NewReader(rs, start, size, info, order)
	if err != nil {
		return nil, err
	}
	return &reader{Reader: rd, meta: meta}, nil
}

func formType(rs io.ReadSeeker) (string, error) {
	if _, err := rs.Seek(8, io.SeekStart); err != nil {
		return "", fmt.Errorf("seeking to form type: %w", err)
	}
	var id [4]byte
	if _, err := io.ReadFull(rs, id[:]); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAiffFile, err)
	}
	return string(id[:]), nil
}

func readComm(rs io.ReadSeeker, chunks []pcm.Chunk, aifc bool) (comm, error) {
	ch, ok := pcm.Find(chunks, "COMM")
	if !ok || ch.Size < 18 {
		return comm{}, ErrMissingCommChunk
	}
	body, err := pcm.ReadChunk(rs, ch)
	if err != nil {
		return comm{}, err
	}

	c := comm{
		frames:      int64(binary.BigEndian.Uint32(body[2:6])),
		compression: "NONE",
	}
	if aifc {
		if len(body) < 22 {
			return comm{}, fmt.Errorf("%w: AIFF-C COMM without compression type", audio.ErrMalformedData)
		}
		c.compression = string(body[18:22])
	}
	return c, nil
}

func subtypeOf(bits int, compression string) (audio.Subtype, binary.ByteOrder, error) {
	switch strings.ToLower(compression) {
	case "none", "twos":
		switch bits {
		case 8:
			return audio.SubtypePCMS8, binary.BigEndian, nil
		case 16:
			return audio.SubtypePCM16, binary.BigEndian, nil
		case 24:
			return audio.SubtypePCM24, binary.BigEndian, nil
		case 32:
			return audio.SubtypePCM32, binary.BigEndian, nil
		}
		return 0, nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	case "sowt":
		switch bits {
		case 16:
			return audio.SubtypePCM16, binary.LittleEndian, nil
		case 24:
			return audio.SubtypePCM24, binary.LittleEndian, nil
		case 32:
			return audio.SubtypePCM32, binary.LittleEndian, nil
		}
		return 0, nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	case "raw ":
		return audio.SubtypePCMU8, binary.BigEndian, nil
	case "fl32":
		return audio.SubtypeFloat, binary.BigEndian, nil
	case "fl64":
		return audio.SubtypeDouble, binary.BigEndian, nil
	}
	return 0, nil, fmt.Errorf("%w: %q", ErrUnsupportedCompression, compression)
}

// readText collects the NAME, AUTH, (c) and ANNO chunks. Several ANNO
// chunks are joined with newlines.
func readText(rs io.ReadSeeker, chunks []pcm.Chunk) (map[audio.StringKind]string, error) {
	meta := make(map[audio.StringKind]string)

	for _, c := range chunks {
		kind, ok := textChunks[c.ID]
		if !ok {
			continue
		}
		body, err := pcm.ReadChunk(rs, c)
		if err != nil {
			return nil, err
		}

		text := strings.TrimRight(string(body), "\x00")
		if prev, ok := meta[kind]; ok && kind == audio.StringComment {
			text = prev + "\n" + text
		}
		meta[kind] = text
	}
	return meta, nil
}
