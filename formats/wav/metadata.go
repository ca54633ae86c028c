// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/sndstream/audio"
)

// readInfoList collects the LIST/INFO strings go-audio knows about. A
// malformed sampler or cue chunk does not hide the strings already decoded.
func readInfoList(rs io.ReadSeeker) (map[audio.StringKind]string, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav stream: %w", err)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadMetadata()

	meta := make(map[audio.StringKind]string)
	if dec.Metadata == nil {
		return meta, nil
	}
	for kind, value := range map[audio.StringKind]string{
		audio.StringTitle:       dec.Metadata.Title,
		audio.StringArtist:      dec.Metadata.Artist,
		audio.StringComment:     dec.Metadata.Comments,
		audio.StringCopyright:   dec.Metadata.Copyright,
		audio.StringSoftware:    dec.Metadata.Software,
		audio.StringDate:        dec.Metadata.CreationDate,
		audio.StringAlbum:       dec.Metadata.Product,
		audio.StringGenre:       dec.Metadata.Genre,
		audio.StringTrackNumber: dec.Metadata.TrackNbr,
	} {
		if value != "" {
			meta[kind] = value
		}
	}
	return meta, nil
}

// setMetadata stores value in the go-audio field matching kind.
func setMetadata(m *wav.Metadata, kind audio.StringKind, value string) error {
	switch kind {
	case audio.StringTitle:
		m.Title = value
	case audio.StringArtist:
		m.Artist = value
	case audio.StringComment:
		m.Comments = value
	case audio.StringCopyright:
		m.Copyright = value
	case audio.StringSoftware:
		m.Software = value
	case audio.StringDate:
		m.CreationDate = value
	case audio.StringAlbum:
		m.Product = value
	case audio.StringGenre:
		m.Genre = value
	case audio.StringTrackNumber:
		m.TrackNbr = value
	default:
		return ErrUnsupportedString
	}
	return nil
}
