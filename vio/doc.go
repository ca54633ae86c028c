// SPDX-License-Identifier: EPL-2.0

// Package vio adapts byte-oriented backing stores to the callback contract a
// sample-codec engine calls into when it performs file-like operations without
// a real file handle.
//
// # Callback Contract
//
// A codec engine reaches a backing store through five functions:
//
//	Length()              total size of the store in bytes
//	Seek(offset, whence)  reposition, returns the absolute offset
//	Read(p)               fill p, returns bytes copied (0 = end of data)
//	Write(p)              consume p, returns bytes accepted
//	Position()            current offset, no side effects
//
// The engine calls them strictly one at a time, on the goroutine that issued
// the originating stream operation. Implementations do not need to be safe for
// concurrent use.
//
// # Building a VirtualIO
//
// From anything that can seek (an *os.File, a *bytes.Reader, a *Buffer, an
// object-store reader):
//
//	v, err := vio.FromStream(file)
//
// Read and Write are discovered through io.Reader and io.Writer. A store that
// was not opened for a direction answers 0 for it, which the engine treats as
// end of data or refusal, never as an error.
//
// From five hand-written functions, for stores with no stream abstraction such
// as ring buffers or compressed pipes:
//
//	v, err := vio.New(vio.Callbacks{
//	    Length:   ring.Len,
//	    Seek:     ring.Seek,
//	    Read:     ring.Read,
//	    Write:    ring.Write,
//	    Position: ring.Tell,
//	})
//
// # Fault Handling
//
// The methods of VirtualIO are the entry points an engine calls. They never
// let a panic or an error cross back into the engine: a failing callback is
// reported as zero progress (0 bytes, unchanged position) and the fault is kept
// so the engine can surface it through its own error path:
//
//	n := v.Read(buf)
//	if n == 0 {
//	    if err := v.TakeErr(); err != nil {
//	        // the store failed, not end of data
//	    }
//	}
//
// # Lifetime
//
// A VirtualIO handed to an engine's open call must stay reachable until the
// session created from it is closed. The stream package keeps that reference
// for the whole session; native engines additionally pin it in a per-session
// cgo handle.
package vio
