// Package local implements a controller backed by the local machine. File
// primitives go through a go-billy filesystem so tests can swap in memfs,
// and command primitives run real processes with merged stdout and stderr.
//
// The controller is intentionally partial. It exposes chunked reads but no
// whole-file read, seeks but no cursor query, and neither ioctl nor fcntl.
// Resources degrade along their documented fallbacks, which makes this
// controller a realistic exercise of the capability model rather than a
// fully capable reference backend.
package local
