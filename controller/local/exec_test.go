package local

import (
	"strings"
	"testing"

	"github.com/yonasBSD/ronin-post-ex/command"
	"github.com/yonasBSD/ronin-post-ex/errors"
)

func TestExecuteEcho(t *testing.T) {
	cmd := command.New(New(), "echo", "hello world")
	defer cmd.Close()

	line, err := cmd.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if line != "hello world" {
		t.Errorf("ReadLine: got %q", line)
	}

	if _, err := cmd.ReadLine(); !errors.IsCode(err, errors.CodeEndOfStream) {
		t.Errorf("read past end: got %v, want END_OF_STREAM", err)
	}
}

func TestExecuteMultiline(t *testing.T) {
	cmd := command.New(New(), "sh", "-c", "echo one; echo two; echo three")
	defer cmd.Close()

	out, err := cmd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if out != "one\ntwo\nthree" {
		t.Errorf("ReadAll: got %q", out)
	}
}

func TestExecuteMergesStderr(t *testing.T) {
	cmd := command.New(New(), "sh", "-c", "echo out; echo err 1>&2")
	defer cmd.Close()

	out, err := cmd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !strings.Contains(out, "out") || !strings.Contains(out, "err") {
		t.Errorf("stderr not merged into output: %q", out)
	}
}

func TestExecuteNonzeroExit(t *testing.T) {
	cmd := command.New(New(), "sh", "-c", "echo done; exit 3")
	defer cmd.Close()

	// A nonzero exit is not a read failure; the output is still consumable
	// and exhaustion is still normal end-of-stream.
	out, err := cmd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if out != "done" {
		t.Errorf("ReadAll: got %q", out)
	}
}

func TestExecuteLazyStart(t *testing.T) {
	// An invocation of a nonexistent program only fails once something
	// pulls on it.
	cmd := command.New(New(), "/no/such/program")
	defer cmd.Close()

	_, err := cmd.ReadLine()
	if !errors.IsCode(err, errors.CodeExecutionFailed) {
		t.Errorf("ReadLine: got %v, want EXECUTION_FAILED", err)
	}
}

func TestExecuteEnv(t *testing.T) {
	ctrl := New(WithEnv(map[string]string{"GREETING": "salutations"}))
	cmd := command.New(ctrl, "sh", "-c", "echo $GREETING")
	defer cmd.Close()

	out, err := cmd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if out != "salutations" {
		t.Errorf("environment not applied: got %q", out)
	}
}

func TestExecuteDefaultEnvInherited(t *testing.T) {
	t.Setenv("INHERITED_VAR", "from-parent")

	cmd := command.New(New(), "sh", "-c", "echo $INHERITED_VAR")
	defer cmd.Close()

	out, err := cmd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if out != "from-parent" {
		t.Errorf("parent environment not inherited by default: got %q", out)
	}
}

func TestExecuteEnvReplacesInherited(t *testing.T) {
	t.Setenv("INHERITED_VAR", "from-parent")

	ctrl := New(WithEnv(map[string]string{"GREETING": "salutations"}))
	cmd := command.New(ctrl, "sh", "-c", "echo \"$GREETING:$INHERITED_VAR\"")
	defer cmd.Close()

	out, err := cmd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if out != "salutations:" {
		t.Errorf("WithEnv must replace the inherited environment: got %q", out)
	}
}

func TestExecuteDir(t *testing.T) {
	ctrl := New(WithDir("/tmp"))
	cmd := command.New(ctrl, "pwd")
	defer cmd.Close()

	out, err := cmd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !strings.Contains(out, "/tmp") {
		t.Errorf("working directory not applied: got %q", out)
	}
}

func TestSendInput(t *testing.T) {
	cmd := command.New(New(), "head", "-n", "1")
	defer cmd.Close()

	if _, err := cmd.WriteString("first line\nsecond line\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}

	line, err := cmd.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if line != "first line" {
		t.Errorf("ReadLine: got %q", line)
	}
}

func TestSendInputWithoutInvocation(t *testing.T) {
	ctrl := New()
	if _, err := ctrl.SendInput([]byte("x")); !errors.IsCode(err, errors.CodeExecutionFailed) {
		t.Errorf("SendInput: got %v, want EXECUTION_FAILED", err)
	}
}

func TestReopenRunsFreshInvocation(t *testing.T) {
	cmd := command.New(New(), "echo", "first")
	if _, err := cmd.ReadLine(); err != nil {
		t.Fatalf("ReadLine: %v", err)
	}

	if _, err := cmd.Reopen("echo", "second"); err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	out, err := cmd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if out != "second" {
		t.Errorf("output after reopen: got %q", out)
	}
}
