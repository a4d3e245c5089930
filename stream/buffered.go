package stream

import (
	"bytes"
	"io"

	"github.com/yonasBSD/ronin-post-ex/errors"
)

// Hooks are the callbacks a resource supplies to drive a Buffered stream.
// Open and Read are the load-bearing pair; the rest are optional and their
// absence selects the documented degraded behavior.
type Hooks struct {
	// Open prepares the backend session (e.g. obtains a handle). It fires
	// at most once per session, on first access. A nil Open is a no-op.
	Open func() error

	// Read returns the next chunk of data at the given offset, or
	// (nil, io.EOF) once the backend is exhausted. A chunk may be returned
	// together with io.EOF. A nil Read makes every read fail with
	// IO_UNSUPPORTED.
	Read func(off int64) ([]byte, error)

	// Write writes data at the given offset and reports how many bytes the
	// backend accepted. A nil Write makes every write fail with
	// IO_UNSUPPORTED.
	Write func(off int64, p []byte) (int, error)

	// Close releases the backend session. A nil Close is a no-op.
	Close func() error

	// Seek forwards a reposition to the backend. When nil, seeking is
	// logical-only and restricted to absolute offsets.
	Seek func(pos int64, whence int) error

	// Tell queries the backend position. When nil, Tell reports the last
	// known logical position.
	Tell func() (int64, error)
}

// Buffered adapts the hook callbacks into a full buffered stream.
// The zero value is not usable; construct with New.
type Buffered struct {
	hooks Hooks

	buf    []byte // pulled from the backend, not yet delivered
	pos    int64  // logical position of the next byte delivered to the caller
	opened bool
	eof    bool // latched once the read hook signals exhaustion
}

// New returns a Buffered stream driven by the given hooks.
// No backend call is made until the first read or write.
func New(hooks Hooks) *Buffered {
	return &Buffered{hooks: hooks}
}

// ensureOpen fires the open hook once per session.
func (b *Buffered) ensureOpen() error {
	if b.opened {
		return nil
	}
	if b.hooks.Open != nil {
		if err := b.hooks.Open(); err != nil {
			return err
		}
	}
	b.opened = true
	return nil
}

// fill pulls one chunk from the backend into the buffer. It is a no-op once
// end-of-stream has been latched.
func (b *Buffered) fill() error {
	if b.eof {
		return nil
	}
	if b.hooks.Read == nil {
		return errors.New(errors.CodeIOUnsupported, "stream has no read hook")
	}
	chunk, err := b.hooks.Read(b.pos + int64(len(b.buf)))
	if len(chunk) > 0 {
		b.buf = append(b.buf, chunk...)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			b.eof = true
			return nil
		}
		return err
	}
	if len(chunk) == 0 {
		// A successful zero-byte read also means exhaustion.
		b.eof = true
	}
	return nil
}

// Read reads up to len(p) bytes into p. It returns io.EOF once the stream
// is exhausted and the buffer drained; the backend is not re-invoked after
// exhaustion.
func (b *Buffered) Read(p []byte) (int, error) {
	if err := b.ensureOpen(); err != nil {
		return 0, err
	}
	for len(b.buf) == 0 {
		if b.eof {
			return 0, io.EOF
		}
		if err := b.fill(); err != nil {
			return 0, err
		}
	}
	n := copy(p, b.buf)
	b.buf = b.buf[n:]
	b.pos += int64(n)
	return n, nil
}

// ReadByte reads and returns a single byte.
func (b *Buffered) ReadByte() (byte, error) {
	var one [1]byte
	if _, err := b.Read(one[:]); err != nil {
		return 0, err
	}
	return one[0], nil
}

// ReadLine reads up to and including the next newline. The final line of a
// stream without a trailing newline is returned as-is. Returns ("", io.EOF)
// once the stream is exhausted.
func (b *Buffered) ReadLine() (string, error) {
	if err := b.ensureOpen(); err != nil {
		return "", err
	}
	for {
		if i := bytes.IndexByte(b.buf, '\n'); i >= 0 {
			line := string(b.buf[:i+1])
			b.buf = b.buf[i+1:]
			b.pos += int64(len(line))
			return line, nil
		}
		if b.eof {
			if len(b.buf) == 0 {
				return "", io.EOF
			}
			line := string(b.buf)
			b.buf = nil
			b.pos += int64(len(line))
			return line, nil
		}
		if err := b.fill(); err != nil {
			return "", err
		}
	}
}

// EachLine calls fn for every remaining line. Iteration stops early if fn
// returns a non-nil error, which is passed through.
func (b *Buffered) EachLine(fn func(line string) error) error {
	for {
		line, err := b.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := fn(line); err != nil {
			return err
		}
	}
}

// ReadAll reads until end-of-stream and returns everything read.
func (b *Buffered) ReadAll() ([]byte, error) {
	if err := b.ensureOpen(); err != nil {
		return nil, err
	}
	for !b.eof {
		if err := b.fill(); err != nil {
			return nil, err
		}
	}
	data := b.buf
	b.buf = nil
	b.pos += int64(len(data))
	return data, nil
}

// Write writes p at the current position via the write hook and advances
// the position by the number of bytes the backend reports as written, which
// tolerates partial writes. Buffered read data is discarded since it may no
// longer reflect backend contents.
func (b *Buffered) Write(p []byte) (int, error) {
	if err := b.ensureOpen(); err != nil {
		return 0, err
	}
	if b.hooks.Write == nil {
		return 0, errors.New(errors.CodeIOUnsupported, "stream has no write hook")
	}
	n, err := b.hooks.Write(b.pos, p)
	b.pos += int64(n)
	b.buf = nil
	if err != nil {
		return n, err
	}
	return n, nil
}

// Seek repositions the stream. The buffer is cleared and end-of-stream
// unlatched, and the logical position is set to pos before the optional
// seek hook is consulted. Without a seek hook only absolute repositioning
// (io.SeekStart) is resolvable; relative and end-relative seeks fail with
// INVALID_INPUT.
func (b *Buffered) Seek(pos int64, whence int) error {
	if err := b.ensureOpen(); err != nil {
		return err
	}
	b.buf = nil
	b.eof = false
	b.pos = pos
	if b.hooks.Seek != nil {
		return b.hooks.Seek(pos, whence)
	}
	if whence != io.SeekStart {
		return errors.New(errors.CodeInvalidInput,
			"relative seek requires a backend seek primitive")
	}
	return nil
}

// Rewind repositions the stream to its beginning.
func (b *Buffered) Rewind() error {
	return b.Seek(0, io.SeekStart)
}

// Tell returns the backend-reported position when a tell hook exists,
// refreshing the logical position as a side effect; otherwise it returns
// the last known logical position.
func (b *Buffered) Tell() (int64, error) {
	if b.hooks.Tell == nil {
		return b.pos, nil
	}
	pos, err := b.hooks.Tell()
	if err != nil {
		return 0, err
	}
	b.pos = pos
	return pos, nil
}

// Pos returns the logical position without consulting the backend.
func (b *Buffered) Pos() int64 {
	return b.pos
}

// EOF reports whether end-of-stream has been latched.
func (b *Buffered) EOF() bool {
	return b.eof
}

// Opened reports whether the open hook has fired for the current session.
func (b *Buffered) Opened() bool {
	return b.opened
}

// Close fires the close hook (once per open session) and resets the stream
// so the next access implicitly reopens it. Closing an unopened or already
// closed stream is a no-op.
func (b *Buffered) Close() error {
	if !b.opened {
		return nil
	}
	b.opened = false
	b.eof = false
	b.buf = nil
	b.pos = 0
	if b.hooks.Close != nil {
		return b.hooks.Close()
	}
	return nil
}
