// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Codec handles one container for a pure-Go engine. Samples cross the codec
// boundary as interleaved float64 values normalized to [-1, 1).
type Codec interface {
	Container() Container

	// Probe reports whether header, the first bytes of a stream, belongs to
	// this container.
	Probe(header []byte) bool

	// Decode parses the stream header and returns a reader positioned at the
	// first frame. hint carries caller-supplied fields for headerless
	// containers.
	Decode(r io.ReadSeeker, hint Info) (FrameReader, error)

	// Check reports whether info can be encoded.
	Check(info Info) bool

	// Encode starts writing a new stream described by info.
	Encode(w io.WriteSeeker, info Info) (FrameWriter, error)
}

// FrameReader yields decoded frames.
type FrameReader interface {
	Info() Info

	// ReadFrames fills dst, whose length is a multiple of the channel count,
	// and returns the number of frames read. It returns 0, io.EOF at the end.
	ReadFrames(dst []float64) (int, error)

	// SeekFrame moves to an absolute frame.
	SeekFrame(frame int64) error

	// String returns a metadata string, or "".
	String(kind StringKind) string
}

// FrameWriter accepts frames to encode.
type FrameWriter interface {
	// WriteFrames encodes src and returns the number of frames accepted.
	WriteFrames(src []float64) (int, error)

	// SetString attaches metadata written when the stream is closed.
	SetString(kind StringKind, value string) error

	// Flush pushes buffered frames to the underlying writer.
	Flush() error

	// Close finalizes headers. It does not close the underlying writer.
	Close() error
}
