package resourcetest

import (
	"io"

	"github.com/yonasBSD/ronin-post-ex/resource"
)

// fakeChunkSize is deliberately tiny so multi-chunk code paths run even
// with short fixtures.
const fakeChunkSize = 8

// Fake is an in-memory controller for unit tests. It implements chunked
// file access, stats, device control, command execution with canned
// output, and input capture, and counts every primitive invocation by
// name.
type Fake struct {
	// Files maps paths to contents.
	Files map[string][]byte

	// Output maps programs to the lines their invocation produces.
	Output map[string][]string

	// Input accumulates everything written to command input.
	Input []byte

	// Calls counts primitive invocations by primitive name.
	Calls map[string]int
}

// NewFake creates an empty fake controller.
func NewFake() *Fake {
	return &Fake{
		Files:  make(map[string][]byte),
		Output: make(map[string][]string),
		Calls:  make(map[string]int),
	}
}

func (f *Fake) count(primitive string) {
	if f.Calls == nil {
		f.Calls = make(map[string]int)
	}
	f.Calls[primitive]++
}

// OpenFile records the open and uses the path as the handle.
func (f *Fake) OpenFile(path, mode string) (resource.Handle, error) {
	f.count("open-file")
	if mode == "w" || mode == "w+" {
		f.Files[path] = nil
	}
	return path, nil
}

// ReadChunk reads up to fakeChunkSize bytes at pos.
func (f *Fake) ReadChunk(handle resource.Handle, pos int64) ([]byte, error) {
	f.count("read-chunk")
	data := f.Files[handle.(string)]
	if pos >= int64(len(data)) {
		return nil, io.EOF
	}
	end := pos + fakeChunkSize
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return data[pos:end], nil
}

// WriteChunk writes data at pos, zero-filling any gap.
func (f *Fake) WriteChunk(handle resource.Handle, pos int64, data []byte) (int, error) {
	f.count("write-chunk")
	path := handle.(string)
	buf := f.Files[path]
	for int64(len(buf)) < pos {
		buf = append(buf, 0)
	}
	buf = append(buf[:pos], data...)
	f.Files[path] = buf
	return len(data), nil
}

// CloseFile records the close.
func (f *Fake) CloseFile(handle resource.Handle) error {
	f.count("close-file")
	return nil
}

// SeekFile records the seek. Positioning is per call, so there is no
// backend cursor to move.
func (f *Fake) SeekFile(handle resource.Handle, pos int64, whence int) error {
	f.count("seek-file")
	return nil
}

// StatFile returns metadata for path, or (nil, nil) when absent.
func (f *Fake) StatFile(path string) (*resource.FileInfo, error) {
	f.count("stat-file")
	data, ok := f.Files[path]
	if !ok {
		return nil, nil
	}
	return &resource.FileInfo{
		Path: path,
		Size: int64(len(data)),
		Mode: 0644,
	}, nil
}

// Ioctl echoes the argument back.
func (f *Fake) Ioctl(cmd uint, arg []byte) ([]byte, error) {
	f.count("ioctl")
	return arg, nil
}

// Fcntl echoes the argument back.
func (f *Fake) Fcntl(cmd uint, arg []byte) ([]byte, error) {
	f.count("fcntl")
	return arg, nil
}

type fakeProducer struct {
	fake  *Fake
	lines []string
}

func (p *fakeProducer) Next() (string, error) {
	p.fake.count("next-line")
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

// Execute returns a producer over the canned output for program.
func (f *Fake) Execute(program string, arguments []string) (resource.LineProducer, error) {
	f.count("execute")
	lines := append([]string(nil), f.Output[program]...)
	return &fakeProducer{fake: f, lines: lines}, nil
}

// SendInput captures data.
func (f *Fake) SendInput(data []byte) (int, error) {
	f.count("send-input")
	f.Input = append(f.Input, data...)
	return len(data), nil
}
