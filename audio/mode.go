// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Mode is the direction a sound is opened in. The values match libsndfile's
// SFM_READ and SFM_WRITE.
type Mode int

const (
	ModeRead  Mode = 0x10
	ModeWrite Mode = 0x20
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	default:
		return fmt.Sprintf("Mode(%#x)", int(m))
	}
}

// StringKind selects a metadata string attached to a sound.
type StringKind int

const (
	StringTitle       StringKind = 0x01
	StringCopyright   StringKind = 0x02
	StringSoftware    StringKind = 0x03
	StringArtist      StringKind = 0x04
	StringComment     StringKind = 0x05
	StringDate        StringKind = 0x06
	StringAlbum       StringKind = 0x07
	StringLicense     StringKind = 0x08
	StringTrackNumber StringKind = 0x09
	StringGenre       StringKind = 0x10
)

// StringKinds lists every metadata kind in code order.
var StringKinds = []StringKind{
	StringTitle, StringCopyright, StringSoftware, StringArtist, StringComment,
	StringDate, StringAlbum, StringLicense, StringTrackNumber, StringGenre,
}

func (k StringKind) String() string {
	switch k {
	case StringTitle:
		return "title"
	case StringCopyright:
		return "copyright"
	case StringSoftware:
		return "software"
	case StringArtist:
		return "artist"
	case StringComment:
		return "comment"
	case StringDate:
		return "date"
	case StringAlbum:
		return "album"
	case StringLicense:
		return "license"
	case StringTrackNumber:
		return "tracknumber"
	case StringGenre:
		return "genre"
	default:
		return fmt.Sprintf("StringKind(%#x)", int(k))
	}
}
