package local

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	"github.com/yonasBSD/ronin-post-ex/errors"
	"github.com/yonasBSD/ronin-post-ex/resource"
)

// chunkSize bounds the bytes returned by a single chunked read.
const chunkSize = 4096

// parseMode translates an fopen-style mode string into open flags. A "b"
// suffix is accepted and ignored.
func parseMode(mode string) (int, error) {
	if n := len(mode); n > 1 && mode[n-1] == 'b' {
		mode = mode[:n-1]
	}
	switch mode {
	case "r":
		return os.O_RDONLY, nil
	case "r+":
		return os.O_RDWR, nil
	case "w":
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, nil
	case "w+":
		return os.O_RDWR | os.O_CREATE | os.O_TRUNC, nil
	case "a":
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND, nil
	case "a+":
		return os.O_RDWR | os.O_CREATE | os.O_APPEND, nil
	}
	return 0, errors.Newf(errors.CodeInvalidInput, "unrecognized open mode %q", mode)
}

func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// OpenFile opens path with fopen-style mode semantics and returns the
// backing file as the handle.
func (c *Controller) OpenFile(path, mode string) (resource.Handle, error) {
	flag, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	f, err := c.fs.OpenFile(normalize(path), flag, 0644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadChunk reads up to one chunk from the file at the given offset. A read
// at or past the end returns io.EOF.
func (c *Controller) ReadChunk(handle resource.Handle, pos int64) ([]byte, error) {
	f, err := fileHandle(handle)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, chunkSize)
	n, err := f.ReadAt(buf, pos)
	if n > 0 {
		return buf[:n], nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

// WriteChunk writes data to the file at the given offset and reports the
// bytes written.
func (c *Controller) WriteChunk(handle resource.Handle, pos int64, data []byte) (int, error) {
	f, err := fileHandle(handle)
	if err != nil {
		return 0, err
	}
	if _, err := f.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	return f.Write(data)
}

// SeekFile repositions the backing file's cursor.
func (c *Controller) SeekFile(handle resource.Handle, pos int64, whence int) error {
	f, err := fileHandle(handle)
	if err != nil {
		return err
	}
	_, err = f.Seek(pos, whence)
	return err
}

// CloseFile releases the backing file.
func (c *Controller) CloseFile(handle resource.Handle) error {
	f, err := fileHandle(handle)
	if err != nil {
		return err
	}
	return f.Close()
}

// StatFile returns metadata for path, or (nil, nil) when nothing exists
// there.
func (c *Controller) StatFile(path string) (*resource.FileInfo, error) {
	path = normalize(path)
	info, err := c.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return &resource.FileInfo{
		Path:    path,
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}, nil
}

func fileHandle(handle resource.Handle) (billy.File, error) {
	f, ok := handle.(billy.File)
	if !ok {
		return nil, errors.Newf(errors.CodeInvalidInput, "handle %v is not an open file", handle)
	}
	return f, nil
}
