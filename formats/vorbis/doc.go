// SPDX-License-Identifier: EPL-2.0

// Package vorbis reads Ogg/Vorbis streams using github.com/jfreymuth/oggvorbis.
//
// # Output Format
//
// Vorbis decodes to floats natively; frames are returned as interleaved
// float64 values in [-1.0, 1.0] with the stream's own channel count.
//
// # Seeking
//
// oggvorbis finds the stream length by scanning to the last page, which
// needs a seekable input. Streams without a known length report Seekable
// false and refuse SeekFrame.
//
// # Limitations
//
// Vorbis is read-only: Check always fails and Encode returns ErrReadOnly.
// Comment headers are not exposed as strings.
package vorbis
