package resource

import (
	"errors"
	"io"
	"reflect"
	"testing"

	rerrors "github.com/yonasBSD/ronin-post-ex/errors"
)

// wholeFileController implements only the whole-file read primitive.
type wholeFileController struct{}

func (wholeFileController) ReadWholeFile(string) ([]byte, error) {
	return []byte("contents"), nil
}

// chunkController implements chunked read and positioned write.
type chunkController struct{}

func (chunkController) ReadChunk(Handle, int64) ([]byte, error) {
	return nil, io.EOF
}

func (chunkController) WriteChunk(Handle, int64, []byte) (int, error) {
	return 0, nil
}

// emptyController implements no primitives at all.
type emptyController struct{}

var testTable = Table{
	"read":  {AnyOf(ReadWholeFile, ReadChunk)},
	"write": {WriteChunk},
	"stat":  {StatFile},
	"seek":  {},
}

func TestPrimitiveNames(t *testing.T) {
	cases := map[string]Primitive{
		"open-file":       OpenFile,
		"read-whole-file": ReadWholeFile,
		"read-chunk":      ReadChunk,
		"write-chunk":     WriteChunk,
		"close-file":      CloseFile,
		"seek-file":       SeekFile,
		"tell-file":       TellFile,
		"stat-file":       StatFile,
		"ioctl":           Ioctl,
		"fcntl":           Fcntl,
		"execute":         Execute,
		"send-input":      SendInput,
	}
	for want, prim := range cases {
		if got := prim.Name(); got != want {
			t.Errorf("Name(): got %q, want %q", got, want)
		}
	}
}

func TestPrimitiveImplementedBy(t *testing.T) {
	if !ReadWholeFile.ImplementedBy(wholeFileController{}) {
		t.Error("expected wholeFileController to implement read-whole-file")
	}
	if ReadChunk.ImplementedBy(wholeFileController{}) {
		t.Error("did not expect wholeFileController to implement read-chunk")
	}
	if ReadWholeFile.ImplementedBy(emptyController{}) {
		t.Error("did not expect emptyController to implement read-whole-file")
	}
}

func TestAnyOf(t *testing.T) {
	readable := AnyOf(ReadWholeFile, ReadChunk)

	if got, want := readable.Name(), "read-whole-file|read-chunk"; got != want {
		t.Errorf("AnyOf Name(): got %q, want %q", got, want)
	}
	if !readable.ImplementedBy(wholeFileController{}) {
		t.Error("expected whole-file controller to satisfy read alternatives")
	}
	if !readable.ImplementedBy(chunkController{}) {
		t.Error("expected chunk controller to satisfy read alternatives")
	}
	if readable.ImplementedBy(emptyController{}) {
		t.Error("did not expect empty controller to satisfy read alternatives")
	}
}

func TestSupports(t *testing.T) {
	r := New("file", chunkController{}, testTable)

	ok, err := r.Supports("read", "write")
	if err != nil {
		t.Fatalf("Supports(read, write): unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected chunk controller to support read and write")
	}

	ok, err = r.Supports("stat")
	if err != nil {
		t.Fatalf("Supports(stat): unexpected error: %v", err)
	}
	if ok {
		t.Error("did not expect chunk controller to support stat")
	}
}

func TestSupports_EmptyRequirementSet(t *testing.T) {
	r := New("file", emptyController{}, testTable)

	ok, err := r.Supports("seek")
	if err != nil {
		t.Fatalf("Supports(seek): unexpected error: %v", err)
	}
	if !ok {
		t.Error("operations with an empty requirement set are always supported")
	}
}

func TestSupports_UnknownOperation(t *testing.T) {
	r := New("file", chunkController{}, testTable)

	ok, err := r.Supports("levitate")
	if err == nil {
		t.Fatal("expected error for unknown operation, got nil")
	}
	if ok {
		t.Error("unknown operation must not report supported")
	}
	if !rerrors.IsCode(err, rerrors.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", rerrors.GetCode(err))
	}
}

func TestSupports_StableAcrossCalls(t *testing.T) {
	r := New("file", wholeFileController{}, testTable)

	for i := 0; i < 3; i++ {
		ok, err := r.Supports("read")
		if err != nil || !ok {
			t.Fatalf("call %d: Supports(read) = %v, %v; want true, nil", i, ok, err)
		}
		ok, err = r.Supports("write")
		if err != nil || ok {
			t.Fatalf("call %d: Supports(write) = %v, %v; want false, nil", i, ok, err)
		}
	}
}

func TestSupported(t *testing.T) {
	r := New("file", chunkController{}, testTable)

	got := r.Supported()
	want := []string{"read", "seek", "write"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Supported(): got %v, want %v", got, want)
	}
}

func TestSupported_EmptyController(t *testing.T) {
	r := New("file", emptyController{}, testTable)

	got := r.Supported()
	want := []string{"seek"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Supported(): got %v, want %v", got, want)
	}
}

func TestRequireCapability(t *testing.T) {
	r := New("file", wholeFileController{}, testTable)

	if err := r.RequireCapability(ReadWholeFile); err != nil {
		t.Errorf("RequireCapability(read-whole-file): unexpected error: %v", err)
	}

	err := r.RequireCapability(Ioctl)
	if err == nil {
		t.Fatal("expected CAPABILITY_MISSING, got nil")
	}
	if !rerrors.IsCode(err, rerrors.CodeCapabilityMissing) {
		t.Errorf("expected CAPABILITY_MISSING, got %v", rerrors.GetCode(err))
	}

	var coded rerrors.CodedError
	if !errors.As(err, &coded) {
		t.Fatal("expected a CodedError")
	}
	if coded.Context()["primitive"] != "ioctl" {
		t.Errorf("error must name the missing primitive, got context %v", coded.Context())
	}
}

func TestConsole_Default(t *testing.T) {
	r := New("file", wholeFileController{}, testTable)

	rw, err := r.Console()
	if rw != nil {
		t.Error("default Console() must not return a session")
	}
	if !rerrors.IsCode(err, rerrors.CodeNotImplemented) {
		t.Errorf("expected NOT_IMPLEMENTED, got %v", rerrors.GetCode(err))
	}
}

func TestTableOperations(t *testing.T) {
	got := testTable.Operations()
	want := []string{"read", "seek", "stat", "write"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Operations(): got %v, want %v", got, want)
	}
}

func TestControllerAccessors(t *testing.T) {
	ctrl := chunkController{}
	r := New("command", ctrl, testTable)

	if r.Kind() != "command" {
		t.Errorf("Kind(): got %q, want %q", r.Kind(), "command")
	}
	if r.Controller() != ctrl {
		t.Error("Controller() must return the bound controller")
	}
}
