// SPDX-License-Identifier: EPL-2.0

// Package blob serves objects of an S3-compatible store as virtual I/O
// backing stores.
//
// Reads fetch byte ranges on demand through a read-ahead window. Writes are
// buffered in memory and uploaded when the Upload is closed, which a Stream
// does after its session is closed when the Upload is passed with
// stream.WithCloser. CreateStream wires that up.
//
//	store, err := blob.NewFromEnv(ctx)
//	if err != nil {
//		return err
//	}
//	s, err := store.OpenStream(ctx, "greetings/hello.wav", audio.Int16)
//
// Callbacks carry no context, so the context given to Open or Create is used
// for every request the store makes on their behalf.
package blob
