package file

import (
	"io/fs"
	"time"

	"github.com/yonasBSD/ronin-post-ex/errors"
	"github.com/yonasBSD/ronin-post-ex/resource"
)

// Stat is an immutable snapshot of file metadata, constructed by one eager
// round-trip to the controller's stat primitive. Fields are copied verbatim
// from the backend record; fields the backend cannot populate are zero.
type Stat struct {
	info resource.FileInfo
}

// NewStat fetches metadata for path from the controller.
//
// A controller lacking the stat primitive fails with CAPABILITY_MISSING; a
// controller whose stat primitive reports the target absent fails with
// NOT_FOUND. The two are distinct error kinds.
func NewStat(ctrl resource.Controller, path string) (*Stat, error) {
	statter, ok := ctrl.(resource.FileStatter)
	if !ok {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeCapabilityMissing,
				"file resource requires controller primitive %q", resource.StatFile.Name()),
			"primitive", resource.StatFile.Name(),
		)
	}
	info, err := statter.StatFile(path)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, errors.WithContext(
			errors.Newf(errors.CodeNotFound, "no such file: %s", path),
			"path", path,
		)
	}
	return &Stat{info: *info}, nil
}

// Path returns the path the record describes.
func (s *Stat) Path() string { return s.info.Path }

// Size returns the file size in bytes.
func (s *Stat) Size() int64 { return s.info.Size }

// Blocks returns the number of allocated blocks.
func (s *Stat) Blocks() int64 { return s.info.Blocks }

// BlockSize returns the preferred I/O block size.
func (s *Stat) BlockSize() int64 { return s.info.BlockSize }

// Inode returns the backend inode number.
func (s *Stat) Inode() uint64 { return s.info.Inode }

// Links returns the hard link count.
func (s *Stat) Links() uint64 { return s.info.Links }

// Mode returns the file mode and permission bits.
func (s *Stat) Mode() fs.FileMode { return s.info.Mode }

// UID returns the owning user id.
func (s *Stat) UID() int { return s.info.UID }

// GID returns the owning group id.
func (s *Stat) GID() int { return s.info.GID }

// AccessTime returns the last access timestamp.
func (s *Stat) AccessTime() time.Time { return s.info.AccessTime }

// ChangeTime returns the last status change timestamp.
func (s *Stat) ChangeTime() time.Time { return s.info.ChangeTime }

// ModTime returns the last modification timestamp.
func (s *Stat) ModTime() time.Time { return s.info.ModTime }

// Zero reports whether the file is empty. This is the only derived
// predicate; everything else is passthrough.
func (s *Stat) Zero() bool { return s.info.Size == 0 }

// IsDir reports whether the mode bits describe a directory.
func (s *Stat) IsDir() bool { return s.info.Mode.IsDir() }

// IsRegular reports whether the mode bits describe a regular file.
func (s *Stat) IsRegular() bool { return s.info.Mode.IsRegular() }
