package file

import (
	"io"

	"github.com/yonasBSD/ronin-post-ex/errors"
	"github.com/yonasBSD/ronin-post-ex/resource"
	"github.com/yonasBSD/ronin-post-ex/stream"
)

// table declares, per operation, the primitives the controller must
// implement. Built once; shared read-only by every File.
var table = resource.Table{
	"open":   {},
	"read":   {resource.AnyOf(resource.ReadWholeFile, resource.ReadChunk)},
	"write":  {resource.WriteChunk},
	"close":  {},
	"seek":   {},
	"tell":   {},
	"ioctl":  {resource.Ioctl},
	"fcntl":  {resource.Fcntl},
	"stat":   {resource.StatFile},
	"reopen": {},
}

// File is a file resource bound to a controller. The open mode is advisory
// and passed through to the open primitive; controllers without an explicit
// open primitive treat the path itself as the handle.
type File struct {
	resource.Resource

	path   string
	mode   string
	handle resource.Handle
	stream *stream.Buffered
}

// New binds a file resource to the controller. An empty mode defaults to
// "r". No backend call is made until the first stream access.
func New(ctrl resource.Controller, path, mode string) *File {
	if mode == "" {
		mode = "r"
	}
	f := &File{
		Resource: resource.New("file", ctrl, table),
		path:     path,
		mode:     mode,
	}
	f.stream = stream.New(f.hooks())
	return f
}

// hooks wires the controller's file primitives into the stream adapter.
// Optional hooks are left nil when the controller lacks the primitive so
// the adapter selects the documented degraded behavior.
func (f *File) hooks() stream.Hooks {
	h := stream.Hooks{
		Open:  f.open,
		Read:  f.readAt,
		Write: f.writeAt,
		Close: f.closeHandle,
	}
	if _, ok := f.Controller().(resource.FileSeeker); ok {
		h.Seek = func(pos int64, whence int) error {
			return f.Controller().(resource.FileSeeker).SeekFile(f.handle, pos, whence)
		}
	}
	if _, ok := f.Controller().(resource.FileTeller); ok {
		h.Tell = func() (int64, error) {
			return f.Controller().(resource.FileTeller).TellFile(f.handle)
		}
	}
	return h
}

// open obtains the backend handle. Without an explicit open primitive the
// path is self-describing and doubles as the handle.
func (f *File) open() error {
	if opener, ok := f.Controller().(resource.FileOpener); ok {
		handle, err := opener.OpenFile(f.path, f.mode)
		if err != nil {
			return err
		}
		f.handle = handle
		return nil
	}
	f.handle = f.path
	return nil
}

// readAt prefers the atomic whole-file primitive: one call transfers the
// entire contents and immediately marks end-of-stream. Otherwise it falls
// back to positioned chunk reads.
func (f *File) readAt(off int64) ([]byte, error) {
	if reader, ok := f.Controller().(resource.WholeFileReader); ok {
		data, err := reader.ReadWholeFile(f.path)
		if err != nil {
			return nil, err
		}
		if off >= int64(len(data)) {
			return nil, io.EOF
		}
		return data[off:], io.EOF
	}
	if reader, ok := f.Controller().(resource.ChunkReader); ok {
		return reader.ReadChunk(f.handle, off)
	}
	return nil, errors.WithContext(
		errors.New(errors.CodeIOUnsupported, "file resource has no read primitive"),
		"path", f.path,
	)
}

func (f *File) writeAt(off int64, p []byte) (int, error) {
	writer, ok := f.Controller().(resource.ChunkWriter)
	if !ok {
		return 0, errors.WithContext(
			errors.New(errors.CodeIOUnsupported, "file resource has no write primitive"),
			"path", f.path,
		)
	}
	return writer.WriteChunk(f.handle, off, p)
}

func (f *File) closeHandle() error {
	var err error
	if closer, ok := f.Controller().(resource.FileCloser); ok {
		err = closer.CloseFile(f.handle)
	}
	f.handle = nil
	return err
}

// endOfStream converts the adapter's io.EOF into the END_OF_STREAM error
// kind, preserving errors.Is(err, io.EOF).
func (f *File) endOfStream(err error) error {
	if errors.Is(err, io.EOF) {
		return errors.WithContext(
			errors.Wrap(io.EOF, errors.CodeEndOfStream, "file stream exhausted"),
			"path", f.path,
		)
	}
	return err
}

// Read reads up to len(p) bytes into p. Once the stream is exhausted it
// returns an END_OF_STREAM error without re-invoking the backend.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.stream.Read(p)
	if err != nil {
		return n, f.endOfStream(err)
	}
	return n, nil
}

// ReadAll reads the remaining stream contents.
func (f *File) ReadAll() ([]byte, error) {
	return f.stream.ReadAll()
}

// ReadLine reads up to and including the next newline.
func (f *File) ReadLine() (string, error) {
	line, err := f.stream.ReadLine()
	if err != nil {
		return line, f.endOfStream(err)
	}
	return line, nil
}

// EachLine calls fn for every remaining line.
func (f *File) EachLine(fn func(line string) error) error {
	return f.stream.EachLine(fn)
}

// Write writes p at the current position. The position advances by the
// number of bytes the backend reports as written.
func (f *File) Write(p []byte) (int, error) {
	return f.stream.Write(p)
}

// WriteString writes s at the current position.
func (f *File) WriteString(s string) (int, error) {
	return f.stream.Write([]byte(s))
}

// Seek repositions the stream. The read buffer is always invalidated and
// the logical position set to pos; the backend seek primitive, when
// present, is forwarded (handle, pos, whence). Without one, only absolute
// repositioning is resolvable.
func (f *File) Seek(pos int64, whence int) error {
	return f.stream.Seek(pos, whence)
}

// Rewind repositions the stream to its beginning.
func (f *File) Rewind() error {
	return f.stream.Rewind()
}

// Tell returns the backend-reported position when the controller has a tell
// primitive (refreshing the logical position as a side effect), else the
// last known logical position.
func (f *File) Tell() (int64, error) {
	return f.stream.Tell()
}

// Pos returns the logical position without a backend round-trip.
func (f *File) Pos() int64 {
	return f.stream.Pos()
}

// Ioctl issues a device control request. The ioctl primitive is required
// exactly; no emulation is attempted.
func (f *File) Ioctl(cmd uint, arg []byte) ([]byte, error) {
	if err := f.RequireCapability(resource.Ioctl); err != nil {
		return nil, err
	}
	return f.Controller().(resource.Ioctler).Ioctl(cmd, arg)
}

// Fcntl issues a file control request. Like Ioctl, the primitive is
// required exactly.
func (f *File) Fcntl(cmd uint, arg []byte) ([]byte, error) {
	if err := f.RequireCapability(resource.Fcntl); err != nil {
		return nil, err
	}
	return f.Controller().(resource.Fcntler).Fcntl(cmd, arg)
}

// Stat fetches fresh metadata for the file's path. Results are never
// cached; every call is a new backend round-trip.
func (f *File) Stat() (*Stat, error) {
	return NewStat(f.Controller(), f.path)
}

// Close releases the backend handle via the close primitive if one exists.
// Closing twice is not an error; the close hook fires once per open
// session. A closed file reopens implicitly on the next access.
func (f *File) Close() error {
	return f.stream.Close()
}

// Reopen closes the current handle and retargets the file at a new path.
// The stream returns to the unopened state; the next access opens the new
// path lazily. Returns the same File.
func (f *File) Reopen(path string) (*File, error) {
	if err := f.stream.Close(); err != nil {
		return f, err
	}
	f.path = path
	return f, nil
}

// Path returns the file's path.
func (f *File) Path() string {
	return f.path
}

// Mode returns the advisory open mode.
func (f *File) Mode() string {
	return f.mode
}

// String renders the file as its path.
func (f *File) String() string {
	return f.path
}
