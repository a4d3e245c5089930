package system

import (
	"io"
	"reflect"
	"testing"

	"github.com/yonasBSD/ronin-post-ex/errors"
	"github.com/yonasBSD/ronin-post-ex/resource"
)

// fullController backs files with an in-memory map and commands with canned
// line output.
type fullController struct {
	files  map[string][]byte
	output map[string][]string
}

func (c *fullController) ReadWholeFile(path string) ([]byte, error) {
	data, ok := c.files[path]
	if !ok {
		return nil, errors.Newf(errors.CodeNotFound, "no such file: %s", path)
	}
	return data, nil
}

func (c *fullController) WriteChunk(handle resource.Handle, pos int64, data []byte) (int, error) {
	path := handle.(string)
	buf := c.files[path]
	for int64(len(buf)) < pos {
		buf = append(buf, 0)
	}
	buf = append(buf[:pos], data...)
	c.files[path] = buf
	return len(data), nil
}

func (c *fullController) StatFile(path string) (*resource.FileInfo, error) {
	data, ok := c.files[path]
	if !ok {
		return nil, nil
	}
	return &resource.FileInfo{Path: path, Size: int64(len(data))}, nil
}

type cannedProducer struct {
	lines []string
}

func (p *cannedProducer) Next() (string, error) {
	if len(p.lines) == 0 {
		return "", io.EOF
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (c *fullController) Execute(program string, arguments []string) (resource.LineProducer, error) {
	return &cannedProducer{lines: c.output[program]}, nil
}

func newController() *fullController {
	return &fullController{
		files:  map[string][]byte{"/etc/hostname": []byte("target01\n")},
		output: map[string][]string{"id": {"uid=0(root) gid=0(root)"}},
	}
}

func TestReadFile(t *testing.T) {
	sys := New(newController())

	data, err := sys.ReadFile("/etc/hostname")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "target01\n" {
		t.Errorf("ReadFile: got %q", data)
	}
}

func TestWriteFile(t *testing.T) {
	ctrl := newController()
	sys := New(ctrl)

	if err := sys.WriteFile("/tmp/drop", []byte("payload")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if string(ctrl.files["/tmp/drop"]) != "payload" {
		t.Errorf("backend holds %q", ctrl.files["/tmp/drop"])
	}
}

func TestRun(t *testing.T) {
	sys := New(newController())

	out, err := sys.Run("id")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != "uid=0(root) gid=0(root)" {
		t.Errorf("Run: got %q", out)
	}
}

func TestStat(t *testing.T) {
	sys := New(newController())

	st, err := sys.Stat("/etc/hostname")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if st.Size() != 9 {
		t.Errorf("Stat size: got %d", st.Size())
	}

	if _, err := sys.Stat("/absent"); !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("Stat of absent path: got %v, want NOT_FOUND", err)
	}
}

func TestReach(t *testing.T) {
	got := New(newController()).Reach()

	want := map[string][]string{
		"file":    {"close", "open", "read", "reopen", "seek", "stat", "tell", "write"},
		"command": {"close", "exec", "read", "reopen"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reach():\n got %v\nwant %v", got, want)
	}
}
