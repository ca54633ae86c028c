// SPDX-License-Identifier: EPL-2.0

// Package aiff reads AIFF and AIFF-C streams and writes AIFF.
//
// This package uses github.com/go-audio/aiff to validate the FORM header,
// decode the COMM chunk (including its 80-bit sample rate) and encode new
// files. Sample data is served straight from the SSND chunk.
//
// # Supported Formats
//
// Reading:
//   - AIFF PCM 8 (signed), 16, 24 and 32-bit, big endian
//   - AIFF-C "NONE" and "twos" (big endian), "sowt" (little endian)
//   - AIFF-C "raw " 8-bit offset binary
//   - AIFF-C "fl32" and "fl64" floats
//
// Writing:
//   - AIFF PCM 16, 24 and 32-bit
//
// # Decoding AIFF Files
//
//	r, err := aiff.Codec{}.Decode(file, audio.Info{})
//	buf := make([]float64, 4096)
//	n, err := r.ReadFrames(buf)
//
// # Metadata
//
// The NAME, AUTH, (c) and ANNO chunks are exposed as title, artist,
// copyright and comment. Strings cannot be written.
package aiff
