package resource

import (
	"io/fs"
	"time"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/producer.go -pkg mocks . LineProducer

// Controller is the opaque backend object a resource is bound to.
// It is supplied by the caller and held for the resource's lifetime; the
// resource never owns it. A controller advertises what it can do by
// implementing zero or more of the primitive interfaces below.
type Controller any

// Handle is an opaque backend-defined value identifying an open file or
// execution session. Controllers without an explicit open primitive may use
// the path itself as the handle.
type Handle any

// LineProducer is a pull-based cursor over the output lines of a backend
// command invocation. Next returns the next line without its trailing
// newline, or io.EOF once the producer is exhausted. Producers are lazy:
// constructing one must not consume output; only Next does.
type LineProducer interface {
	Next() (string, error)
}

// FileInfo is the metadata record returned by the stat-file primitive.
// All fields are passed through verbatim from the backend; fields the
// backend cannot populate are left zero.
type FileInfo struct {
	// Path is the path the record describes.
	Path string

	// Size is the file size in bytes.
	Size int64

	// Blocks is the number of allocated blocks.
	Blocks int64

	// BlockSize is the preferred I/O block size.
	BlockSize int64

	// Inode is the backend inode number.
	Inode uint64

	// Links is the hard link count.
	Links uint64

	// Mode holds the file mode and permission bits.
	Mode fs.FileMode

	// UID and GID identify the owning user and group.
	UID int
	GID int

	// AccessTime, ChangeTime and ModTime are the classic stat timestamps.
	AccessTime time.Time
	ChangeTime time.Time
	ModTime    time.Time
}

// File-related primitives. All are optional; each resource operation
// requires only the subset declared in its capability table.

// FileOpener opens a backend file and returns a backend-chosen handle.
// The mode string is advisory ("r", "w", "a", "r+", ...).
type FileOpener interface {
	OpenFile(path, mode string) (Handle, error)
}

// WholeFileReader transfers an entire file in a single call.
// Backends that can only move files atomically implement this instead of
// ChunkReader.
type WholeFileReader interface {
	ReadWholeFile(path string) ([]byte, error)
}

// ChunkReader performs a positioned partial read. It returns the next chunk
// of data at the given offset, or (nil, io.EOF) once the file is exhausted.
type ChunkReader interface {
	ReadChunk(handle Handle, pos int64) ([]byte, error)
}

// ChunkWriter performs a positioned partial write and reports how many
// bytes the backend actually wrote, which may be fewer than len(data).
type ChunkWriter interface {
	WriteChunk(handle Handle, pos int64, data []byte) (int, error)
}

// FileCloser releases an open handle.
type FileCloser interface {
	CloseFile(handle Handle) error
}

// FileSeeker repositions the backend cursor for a handle.
// The whence value follows io.SeekStart/io.SeekCurrent/io.SeekEnd.
type FileSeeker interface {
	SeekFile(handle Handle, pos int64, whence int) error
}

// FileTeller queries the backend cursor position for a handle.
type FileTeller interface {
	TellFile(handle Handle) (int64, error)
}

// FileStatter fetches file metadata. A (nil, nil) result means the
// primitive worked but the target does not exist; resources translate that
// into a NOT_FOUND error, distinct from a missing primitive.
type FileStatter interface {
	StatFile(path string) (*FileInfo, error)
}

// Ioctler issues a low-level device control request. There is no emulation
// for this primitive; resources require it exactly.
type Ioctler interface {
	Ioctl(cmd uint, arg []byte) ([]byte, error)
}

// Fcntler issues a low-level file control request. Like Ioctler, it is
// required exactly, with no fallback.
type Fcntler interface {
	Fcntl(cmd uint, arg []byte) ([]byte, error)
}

// Command-related primitives.

// CommandExecutor starts a backend command invocation and returns a lazy
// producer of its output lines.
type CommandExecutor interface {
	Execute(program string, arguments []string) (LineProducer, error)
}

// InputSender writes data to the input of the running command. Execution
// and input injection are independent capabilities; implementing one says
// nothing about the other.
type InputSender interface {
	SendInput(data []byte) (int, error)
}
