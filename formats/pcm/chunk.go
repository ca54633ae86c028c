// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/sndstream/audio"
)

// Chunk locates one RIFF or IFF chunk body.
type Chunk struct {
	ID     string
	Offset int64 // first byte of the body
	Size   int64
}

// ScanChunks walks the chunk list that starts at offset start and ends at
// end (or at the end of the stream, whichever comes first). Bodies are
// padded to even sizes. A body that runs past the end is clamped, so a
// truncated final data chunk is still usable.
func ScanChunks(r io.ReadSeeker, start, end int64, order binary.ByteOrder) ([]Chunk, error) {
	streamEnd, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("measuring stream: %w", err)
	}
	end = min(end, streamEnd)

	var (
		chunks []Chunk
		hdr    [8]byte
	)
	for pos := start; pos+8 <= end; {
		if _, err := r.Seek(pos, io.SeekStart); err != nil {
			return nil, fmt.Errorf("seeking to chunk: %w", err)
		}
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading chunk header: %w", err)
		}

		size := int64(order.Uint32(hdr[4:]))
		body := pos + 8
		chunks = append(chunks, Chunk{
			ID:     string(hdr[:4]),
			Offset: body,
			Size:   min(size, end-body),
		})
		pos = body + size + size&1
	}
	return chunks, nil
}

// Find returns the first chunk with the given id.
func Find(chunks []Chunk, id string) (Chunk, bool) {
	for _, c := range chunks {
		if c.ID == id {
			return c, true
		}
	}
	return Chunk{}, false
}

// ReadChunk returns the body of c.
func ReadChunk(r io.ReadSeeker, c Chunk) ([]byte, error) {
	if _, err := r.Seek(c.Offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to %q chunk: %w", c.ID, err)
	}
	body := make([]byte, c.Size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("%w: reading %q chunk: %v", audio.ErrMalformedData, c.ID, err)
	}
	return body, nil
}
