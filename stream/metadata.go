// SPDX-License-Identifier: EPL-2.0

package stream

import "github.com/ik5/sndstream/audio"

// String returns a metadata string of a read stream, or "" when absent.
func (s *Stream) String(kind audio.StringKind) (string, error) {
	if err := s.usable(); err != nil {
		return "", err
	}
	if s.mode != audio.ModeRead {
		return "", ErrNotReadable
	}
	return s.h.String(kind), nil
}

// SetString attaches a metadata string to a write stream. Containers store
// it when the stream is closed.
func (s *Stream) SetString(kind audio.StringKind, value string) error {
	if err := s.usable(); err != nil {
		return err
	}
	if s.mode != audio.ModeWrite {
		return ErrNotWritable
	}
	return s.h.SetString(kind, value)
}

// Title is String(audio.StringTitle).
func (s *Stream) Title() (string, error) { return s.String(audio.StringTitle) }

// SetTitle is SetString(audio.StringTitle, v).
func (s *Stream) SetTitle(v string) error { return s.SetString(audio.StringTitle, v) }

// Artist is String(audio.StringArtist).
func (s *Stream) Artist() (string, error) { return s.String(audio.StringArtist) }

// SetArtist is SetString(audio.StringArtist, v).
func (s *Stream) SetArtist(v string) error { return s.SetString(audio.StringArtist, v) }

// Comment is String(audio.StringComment).
func (s *Stream) Comment() (string, error) { return s.String(audio.StringComment) }

// SetComment is SetString(audio.StringComment, v).
func (s *Stream) SetComment(v string) error { return s.SetString(audio.StringComment, v) }
