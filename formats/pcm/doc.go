// SPDX-License-Identifier: EPL-2.0

// Package pcm reads and writes linear PCM frames stored in a byte region of
// a stream. Container codecs use Reader and Writer for their sample data;
// Codec handles headerless RAW streams described entirely by the caller.
//
// # Sample Format
//
// Frames cross this package as interleaved float64 values. Integer subtypes
// map to [-1.0, 1.0) by dividing by 2^(bits-1), so conversions between
// integer widths are exact shifts. 8-bit data is signed (PCM_S8) or offset
// binary (PCM_U8) depending on the subtype.
//
// # Usage
//
//	info := audio.Info{
//	    SampleRate: 8000,
//	    Channels:   1,
//	    Container:  audio.ContainerRAW,
//	    Subtype:    audio.SubtypePCM16,
//	    Endian:     audio.EndianLittle,
//	}
//	r, err := pcm.Codec{}.Decode(f, info)
//	buf := make([]float64, 1024)
//	n, err := r.ReadFrames(buf)
package pcm
