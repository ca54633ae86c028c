// SPDX-License-Identifier: EPL-2.0

// Package mp3 reads MPEG Layer III streams using github.com/hajimehoshi/go-mp3.
//
// # Output Format
//
// go-mp3 always produces 16-bit stereo, so every stream reports two
// channels; mono files are duplicated onto both. Frames are returned as
// interleaved float64 values in [-1.0, 1.0).
//
// # Seeking
//
// The frame count comes from go-mp3's Length, which needs to scan the
// whole stream once. Streams whose length cannot be determined report
// Seekable false and refuse SeekFrame.
//
// # Limitations
//
// MP3 is read-only: Check always fails and Encode returns ErrReadOnly.
// ID3 tags are skipped and not exposed as strings.
package mp3
