// Package resourcetest provides conformance suites for controller
// implementations and an in-memory fake controller for unit tests.
//
// A controller passes a suite when resources bound to it honor the
// capability and stream contracts regardless of which primitives it
// implements. Run the suites from a controller package's own tests:
//
//	resourcetest.TestFile(t, resourcetest.FileContract{
//		NewController: func(t *testing.T, files map[string][]byte) resource.Controller {
//			...
//		},
//		Writable: true,
//	})
package resourcetest

import (
	"testing"

	"github.com/yonasBSD/ronin-post-ex/command"
	"github.com/yonasBSD/ronin-post-ex/errors"
	"github.com/yonasBSD/ronin-post-ex/file"
	"github.com/yonasBSD/ronin-post-ex/resource"
)

// FileContract describes how to exercise a controller's file primitives.
type FileContract struct {
	// NewController returns a controller with the given files preloaded.
	NewController func(t *testing.T, files map[string][]byte) resource.Controller

	// Writable indicates the controller implements chunked writes.
	Writable bool

	// Statable indicates the controller implements the stat primitive.
	Statable bool
}

// TestFile runs the file resource conformance suite against a controller.
func TestFile(t *testing.T, c FileContract) {
	t.Run("ReadRoundTrip", func(t *testing.T) {
		testFileRead(t, c)
	})
	t.Run("LineIteration", func(t *testing.T) {
		testFileLines(t, c)
	})
	t.Run("EndOfStreamLatch", func(t *testing.T) {
		testFileEndOfStream(t, c)
	})
	t.Run("SupportsMatchesBehavior", func(t *testing.T) {
		testFileSupports(t, c)
	})
	if c.Writable {
		t.Run("WriteRoundTrip", func(t *testing.T) {
			testFileWrite(t, c)
		})
	}
	if c.Statable {
		t.Run("Stat", func(t *testing.T) {
			testFileStat(t, c)
		})
	}
}

func testFileRead(t *testing.T, c FileContract) {
	ctrl := c.NewController(t, map[string][]byte{"/probe": []byte("probe contents")})

	f := file.New(ctrl, "/probe", "r")
	defer f.Close()

	data, err := f.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: got error %v, want nil", err)
	}
	if string(data) != "probe contents" {
		t.Errorf("ReadAll: got %q, want %q", data, "probe contents")
	}
}

func testFileLines(t *testing.T, c FileContract) {
	ctrl := c.NewController(t, map[string][]byte{"/lines": []byte("alpha\nbeta\ngamma")})

	f := file.New(ctrl, "/lines", "r")
	defer f.Close()

	var lines []string
	err := f.EachLine(func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatalf("EachLine: got error %v, want nil", err)
	}
	if len(lines) != 3 {
		t.Fatalf("EachLine: got %d lines, want 3", len(lines))
	}
	if lines[0] != "alpha\n" || lines[2] != "gamma" {
		t.Errorf("EachLine: got %q", lines)
	}
}

func testFileEndOfStream(t *testing.T, c FileContract) {
	ctrl := c.NewController(t, map[string][]byte{"/short": []byte("x")})

	f := file.New(ctrl, "/short", "r")
	defer f.Close()

	if _, err := f.ReadAll(); err != nil {
		t.Fatalf("ReadAll: got error %v, want nil", err)
	}

	_, err := f.Read(make([]byte, 1))
	if !errors.IsCode(err, errors.CodeEndOfStream) {
		t.Errorf("Read past end: got %v, want END_OF_STREAM", err)
	}
}

func testFileSupports(t *testing.T, c FileContract) {
	ctrl := c.NewController(t, nil)
	f := file.New(ctrl, "/any", "r")

	// Every advertised operation must report as supported, and the
	// write/stat claims must match the contract.
	for _, op := range f.Supported() {
		ok, err := f.Supports(op)
		if err != nil || !ok {
			t.Errorf("Supports(%q) = %v, %v for an advertised operation", op, ok, err)
		}
	}

	ok, err := f.Supports("write")
	if err != nil {
		t.Fatalf("Supports(write): %v", err)
	}
	if ok != c.Writable {
		t.Errorf("Supports(write) = %v, contract says %v", ok, c.Writable)
	}

	ok, err = f.Supports("stat")
	if err != nil {
		t.Fatalf("Supports(stat): %v", err)
	}
	if ok != c.Statable {
		t.Errorf("Supports(stat) = %v, contract says %v", ok, c.Statable)
	}
}

func testFileWrite(t *testing.T, c FileContract) {
	ctrl := c.NewController(t, nil)

	f := file.New(ctrl, "/out", "w")
	if _, err := f.WriteString("written"); err != nil {
		t.Fatalf("WriteString: got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}

	g := file.New(ctrl, "/out", "r")
	defer g.Close()
	data, err := g.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: got error %v, want nil", err)
	}
	if string(data) != "written" {
		t.Errorf("write round trip: got %q, want %q", data, "written")
	}
}

func testFileStat(t *testing.T, c FileContract) {
	ctrl := c.NewController(t, map[string][]byte{"/present": []byte("0123")})

	st, err := file.NewStat(ctrl, "/present")
	if err != nil {
		t.Fatalf("NewStat: got error %v, want nil", err)
	}
	if st.Size() != 4 {
		t.Errorf("Size: got %d, want 4", st.Size())
	}

	_, err = file.NewStat(ctrl, "/absent")
	if !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("stat of absent path: got %v, want NOT_FOUND", err)
	}
}

// CommandContract describes how to exercise a controller's command
// primitives.
type CommandContract struct {
	// NewController returns a fresh controller.
	NewController func(t *testing.T) resource.Controller

	// Echo returns an invocation that prints exactly the given lines.
	Echo func(lines []string) (program string, args []string)

	// Input indicates the controller implements the send-input primitive.
	Input bool
}

// TestCommand runs the command resource conformance suite against a
// controller.
func TestCommand(t *testing.T, c CommandContract) {
	t.Run("OutputOrder", func(t *testing.T) {
		testCommandOutput(t, c)
	})
	t.Run("EndOfStreamLatch", func(t *testing.T) {
		testCommandEndOfStream(t, c)
	})
	t.Run("ReopenIsolation", func(t *testing.T) {
		testCommandReopen(t, c)
	})
	t.Run("WriteGating", func(t *testing.T) {
		testCommandWriteGating(t, c)
	})
}

func testCommandOutput(t *testing.T, c CommandContract) {
	program, args := c.Echo([]string{"one", "two", "three"})
	cmd := command.New(c.NewController(t), program, args...)
	defer cmd.Close()

	var lines []string
	err := cmd.EachLine(func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatalf("EachLine: got error %v, want nil", err)
	}
	if len(lines) != 3 || lines[0] != "one" || lines[1] != "two" || lines[2] != "three" {
		t.Errorf("output order: got %q", lines)
	}
}

func testCommandEndOfStream(t *testing.T, c CommandContract) {
	program, args := c.Echo([]string{"only"})
	cmd := command.New(c.NewController(t), program, args...)
	defer cmd.Close()

	if _, err := cmd.ReadLine(); err != nil {
		t.Fatalf("ReadLine: got error %v, want nil", err)
	}

	_, err := cmd.ReadLine()
	if !errors.IsCode(err, errors.CodeEndOfStream) {
		t.Errorf("read past end: got %v, want END_OF_STREAM", err)
	}
	if !cmd.EOF() {
		t.Error("end-of-stream flag not set after exhaustion")
	}
}

func testCommandReopen(t *testing.T, c CommandContract) {
	first, firstArgs := c.Echo([]string{"old-a", "old-b"})
	second, secondArgs := c.Echo([]string{"new"})

	cmd := command.New(c.NewController(t), first, firstArgs...)
	defer cmd.Close()

	if _, err := cmd.ReadLine(); err != nil {
		t.Fatalf("ReadLine: got error %v, want nil", err)
	}
	if _, err := cmd.Reopen(second, secondArgs...); err != nil {
		t.Fatalf("Reopen: got error %v, want nil", err)
	}

	out, err := cmd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll after reopen: got error %v, want nil", err)
	}
	if out != "new" {
		t.Errorf("output after reopen: got %q, want %q (no interleaving)", out, "new")
	}
}

func testCommandWriteGating(t *testing.T, c CommandContract) {
	program, args := c.Echo(nil)
	cmd := command.New(c.NewController(t), program, args...)
	defer cmd.Close()

	ok, err := cmd.Supports("write")
	if err != nil {
		t.Fatalf("Supports(write): %v", err)
	}
	if ok != c.Input {
		t.Errorf("Supports(write) = %v, contract says %v", ok, c.Input)
	}

	if !c.Input {
		_, err := cmd.Write([]byte("ignored"))
		if !errors.IsCode(err, errors.CodeIOUnsupported) {
			t.Errorf("Write without input primitive: got %v, want IO_UNSUPPORTED", err)
		}
	}
}
