// SPDX-License-Identifier: EPL-2.0

// Package audio holds the data model shared by streams and codec engines.
//
// # Describing a sound
//
// Info describes an open sound: frame count, sample rate, channel count and
// a format made of a Container, a Subtype and an Endian. The numeric values
// follow libsndfile, so a Format passes unchanged to the native engine:
//
//	info := audio.Info{
//	    SampleRate: 48000,
//	    Channels:   2,
//	    Container:  audio.ContainerWAV,
//	    Subtype:    audio.SubtypePCM16,
//	}
//	fmt.Println(info.Format()) // wav/pcm_16
//
// # Sample kinds
//
// SampleKind is the representation a caller exchanges with a stream,
// independently of how the samples are stored:
//
//	Int16    2 bytes
//	Int32    4 bytes
//	Float32  4 bytes
//	Float64  8 bytes
//
// Integer kinds use the full range of the type; float kinds are normalized
// to [-1.0, 1.0].
//
// # Engines
//
// An Engine opens codec sessions (Handle) either from a path or from a
// vio.VirtualIO binding. Engines register themselves in a process-wide
// Registry:
//
//	e, err := audio.LookupEngine("go")
//	h, err := e.OpenVirtual(v, audio.ModeRead, &info)
//
// Pure-Go engines delegate each container to a Codec, which exchanges
// interleaved float64 frames through FrameReader and FrameWriter.
//
// # Error Handling
//
// Engine failures are reported as *EngineError carrying an ErrorCode. Each
// code unwraps to a sentinel, so callers test with errors.Is:
//
//	if errors.Is(err, audio.ErrUnrecognizedFormat) {
//	    // not a sound file
//	}
//
// ErrInvalidOperation covers misuse of a stream (reading a write stream,
// seeking a non-seekable one). ErrClosed wraps it for calls made after
// Close.
package audio
