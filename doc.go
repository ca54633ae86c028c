// SPDX-License-Identifier: EPL-2.0

// Package sndstream bridges sound codec engines and Go streams.
//
// An engine decodes and encodes sound files through five callbacks
// (package vio). Package stream wraps an engine session as an
// io.ReadWriteSeeker of interleaved samples, so a sound file can be handled
// with the usual io plumbing:
//
//	src, _ := stream.OpenRead("in.wav", audio.Int16)
//	defer src.Close()
//
//	buf := make([]byte, 1024*src.BytesPerFrame())
//	n, err := src.Read(buf)
//
// Positions and lengths on a stream are in bytes and are always a multiple of
// the frame size, the channel count times the width of the sample kind.
//
// # Engines
//
// The pure-Go engine (package engine) is registered under the name "go" and
// handles WAV, AIFF and RAW files, plus MP3 and Ogg Vorbis for reading.
// Building with cgo and the sndfile tag adds the libsndfile engine under the
// name "native" (package engine/native).
//
// # Storage
//
// Any io.Seeker can back a stream through vio.FromStream. Package blob serves
// sounds straight from an S3-compatible object store.
//
// This package adds Copy and ConvertFile on top of streams.
package sndstream
