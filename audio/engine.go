// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/sndstream/vio"

// Engine opens codec sessions over files or virtual I/O bindings.
type Engine interface {
	// Name identifies the engine in a Registry.
	Name() string

	// OpenPath opens the file at path. In ModeRead info is filled in on
	// success (a RAW container must be described by the caller); in ModeWrite
	// info describes the sound to create.
	OpenPath(path string, mode Mode, info *Info) (Handle, error)

	// OpenVirtual is OpenPath over a VirtualIO binding. v must stay reachable
	// until the returned Handle is closed.
	OpenVirtual(v *vio.VirtualIO, mode Mode, info *Info) (Handle, error)

	// FormatCheck reports whether info can be written.
	FormatCheck(info Info) bool

	// ErrorMessage returns the engine's text for code.
	ErrorMessage(code ErrorCode) string
}

// Availability is implemented by engines that register a placeholder when
// their backend is compiled out. A placeholder is never picked as the
// default but can still be looked up by name.
type Availability interface {
	Available() bool
}

// Handle is an open codec session. Buffers hold interleaved samples; their
// length must be a multiple of the channel count. Counts are in frames.
//
// A Handle is owned by a single caller and is not safe for concurrent use.
type Handle interface {
	// Seek moves to a frame offset and returns the new absolute frame.
	Seek(frames int64, whence int) (int64, error)

	ReadInt16(buf []int16) (int64, error)
	ReadInt32(buf []int32) (int64, error)
	ReadFloat32(buf []float32) (int64, error)
	ReadFloat64(buf []float64) (int64, error)

	WriteInt16(buf []int16) (int64, error)
	WriteInt32(buf []int32) (int64, error)
	WriteFloat32(buf []float32) (int64, error)
	WriteFloat64(buf []float64) (int64, error)

	// String returns a metadata string, or "" when absent.
	String(kind StringKind) string
	// SetString attaches a metadata string. Only valid in ModeWrite.
	SetString(kind StringKind, value string) error

	// Flush commits buffered writes to the backing store.
	Flush() error
	// Close releases the session. It must be called exactly once.
	Close() error
	// Error returns the code of the last failure, or CodeNone.
	Error() ErrorCode
}
