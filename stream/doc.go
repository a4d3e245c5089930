// Package stream provides the buffered stream adapter shared by every
// stream-shaped resource.
//
// A resource hands the adapter a small set of hook callbacks (open, read a
// chunk at an offset, and optionally write, close, seek, tell) and receives
// the full surface callers expect from a stream: byte reads, line reads,
// read-everything, positioned writes, seek/tell/rewind. The adapter owns
// the awkward parts of that translation:
//
//   - Lazy open: the open hook fires at most once per session, on the first
//     read or write, never at construction.
//   - Buffering: chunks pulled from the backend are cached and served to
//     byte-, line- and whole-stream reads without redundant backend calls.
//   - Seek invalidation: any seek clears the buffer and repositions the
//     stream before the optional seek hook is consulted.
//   - End-of-stream latching: once the read hook signals exhaustion, no
//     further backend reads are issued until the stream is reopened.
//   - Close: the close hook fires once per open session; a closed stream
//     implicitly reopens on the next access.
//
// The adapter assumes single-threaded, single-owner use and performs no
// locking.
package stream
