// Package system aggregates the concrete resource types behind a single
// controller binding. A System is a convenience front door: it constructs
// File and Command resources on demand and offers one-shot helpers for the
// common read, write, and execute round-trips.
package system

import (
	"github.com/yonasBSD/ronin-post-ex/command"
	"github.com/yonasBSD/ronin-post-ex/file"
	"github.com/yonasBSD/ronin-post-ex/resource"
)

// System binds every resource type to one controller.
type System struct {
	ctrl resource.Controller
}

// New binds a system to the controller.
func New(ctrl resource.Controller) *System {
	return &System{ctrl: ctrl}
}

// Controller returns the bound controller.
func (s *System) Controller() resource.Controller {
	return s.ctrl
}

// File constructs a file resource for path. An empty mode defaults to "r".
func (s *System) File(path, mode string) *file.File {
	return file.New(s.ctrl, path, mode)
}

// Command constructs a command resource for the invocation.
func (s *System) Command(program string, args ...string) *command.Command {
	return command.New(s.ctrl, program, args...)
}

// Stat fetches metadata for path.
func (s *System) Stat(path string) (*file.Stat, error) {
	return file.NewStat(s.ctrl, path)
}

// ReadFile reads the entire contents of path.
func (s *System) ReadFile(path string) ([]byte, error) {
	f := s.File(path, "r")
	defer f.Close()
	return f.ReadAll()
}

// WriteFile writes data to path, replacing its contents from offset zero.
func (s *System) WriteFile(path string, data []byte) error {
	f := s.File(path, "w")
	defer f.Close()
	_, err := f.Write(data)
	return err
}

// Run executes the invocation and returns its complete, newline-joined
// output.
func (s *System) Run(program string, args ...string) (string, error) {
	cmd := s.Command(program, args...)
	defer cmd.Close()
	return cmd.ReadAll()
}

// Reach reports, per resource kind, the operations the bound controller
// can satisfy. The report reflects the controller's primitives only; it
// never invokes them.
func (s *System) Reach() map[string][]string {
	return map[string][]string{
		"file":    s.File("/", "r").Supported(),
		"command": s.Command("").Supported(),
	}
}
