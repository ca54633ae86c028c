// SPDX-License-Identifier: EPL-2.0

// Package engine is a pure-Go codec engine. It implements audio.Engine on
// top of the container codecs in formats/, and reaches every backing store
// through the vio callbacks, so files, memory buffers and object stores
// behave the same way.
//
// The engine registers itself under the name "go" when the package is
// imported:
//
//	import _ "github.com/ik5/sndstream/engine"
//
//	e, _ := audio.LookupEngine("go")
//
// # Containers
//
// Reading probes the first bytes of the stream when the caller leaves
// Info.Container unset. RAW streams cannot be probed and must be described
// by the caller. Supported containers are WAV, AIFF, MPEG Layer III,
// Ogg/Vorbis and RAW; writing is limited to WAV, AIFF and RAW.
//
// # Sessions
//
// Write sessions are not seekable: the codecs patch their headers on close
// and cannot rewrite sample data. A zero-relative seek is always allowed and
// reports the current frame.
package engine
