package command

import (
	"io"
	"strings"

	"github.com/yonasBSD/ronin-post-ex/errors"
	"github.com/yonasBSD/ronin-post-ex/resource"
	"github.com/yonasBSD/ronin-post-ex/stream"
)

// table declares, per operation, the primitives the controller must
// implement. Built once; shared read-only by every Command. Writing needs
// the execute primitive too: input goes to a running invocation.
var table = resource.Table{
	"exec":   {resource.Execute},
	"read":   {resource.Execute},
	"write":  {resource.SendInput, resource.Execute},
	"close":  {},
	"reopen": {},
}

// Command is a command resource bound to a controller. Output flows
// through the buffered stream adapter one line per chunk, giving byte,
// line, and whole-output reads over a single shared buffer; input
// injection is a separate, independent capability.
type Command struct {
	resource.Resource

	program  string
	args     []string
	producer resource.LineProducer
	stream   *stream.Buffered
}

// New binds a command resource to the controller. No backend call is made
// until the first read or write.
func New(ctrl resource.Controller, program string, args ...string) *Command {
	c := &Command{
		Resource: resource.New("command", ctrl, table),
		program:  program,
		args:     append([]string(nil), args...),
	}
	c.stream = stream.New(c.hooks())
	return c
}

// hooks wires the invocation into the stream adapter: open starts the
// producer, read pulls its next line. The producer is forward-only, so the
// read hook ignores the offset. The write hook exists only when the
// controller can inject input.
func (c *Command) hooks() stream.Hooks {
	h := stream.Hooks{
		Open: c.open,
		Read: func(int64) ([]byte, error) {
			return c.nextLine()
		},
		Close: func() error {
			c.producer = nil
			return nil
		},
	}
	if sender, ok := c.Controller().(resource.InputSender); ok {
		h.Write = func(_ int64, p []byte) (int, error) {
			return sender.SendInput(p)
		}
	}
	return h
}

// open starts a new backend invocation, binding program and arguments into
// a lazy line producer. The producer consumes nothing until its first pull.
func (c *Command) open() error {
	if err := c.RequireCapability(resource.Execute); err != nil {
		return err
	}
	producer, err := c.Controller().(resource.CommandExecutor).Execute(c.program, c.args)
	if err != nil {
		return errors.WithContext(
			errors.Wrap(err, errors.CodeExecutionFailed, "command execution failed"),
			"program", c.program,
		)
	}
	c.producer = producer
	return nil
}

// nextLine pulls one output line from the producer and frames it as a
// newline-terminated chunk. Exhaustion surfaces as io.EOF, which latches
// the adapter so the producer is never pulled again.
func (c *Command) nextLine() ([]byte, error) {
	line, err := c.producer.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var coded errors.CodedError
		if errors.As(err, &coded) {
			return nil, err
		}
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeIOError, "command read failed"),
			"program", c.program,
		)
	}
	return append([]byte(line), '\n'), nil
}

// endOfStream converts the adapter's io.EOF into the END_OF_STREAM error
// kind, preserving errors.Is(err, io.EOF).
func (c *Command) endOfStream(err error) error {
	if errors.Is(err, io.EOF) {
		return errors.WithContext(
			errors.Wrap(io.EOF, errors.CodeEndOfStream, "command output exhausted"),
			"program", c.program,
		)
	}
	return err
}

// Read reads up to len(p) bytes of output, starting the invocation lazily
// on the first call. Once the output is exhausted it returns an
// END_OF_STREAM error without re-invoking the backend.
func (c *Command) Read(p []byte) (int, error) {
	n, err := c.stream.Read(p)
	if err != nil {
		return n, c.endOfStream(err)
	}
	return n, nil
}

// ReadByte reads a single output byte.
func (c *Command) ReadByte() (byte, error) {
	b, err := c.stream.ReadByte()
	if err != nil {
		return b, c.endOfStream(err)
	}
	return b, nil
}

// ReadLine pulls the next output line, without its trailing newline.
func (c *Command) ReadLine() (string, error) {
	line, err := c.stream.ReadLine()
	if err != nil {
		return "", c.endOfStream(err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// EachLine calls fn for every remaining output line. Producer exhaustion
// ends iteration without error; an error from fn aborts it.
func (c *Command) EachLine(fn func(line string) error) error {
	for {
		line, err := c.ReadLine()
		if err != nil {
			if errors.IsCode(err, errors.CodeEndOfStream) {
				return nil
			}
			return err
		}
		if err := fn(line); err != nil {
			return err
		}
	}
}

// ReadAll drains the remaining output and returns it newline-joined.
func (c *Command) ReadAll() (string, error) {
	data, err := c.stream.ReadAll()
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

// Write sends data to the running command's input, starting the invocation
// first so input has somewhere to go. Requires the send-input primitive;
// execution support alone does not imply it.
func (c *Command) Write(p []byte) (int, error) {
	if _, ok := c.Controller().(resource.InputSender); !ok {
		return 0, errors.WithContext(
			errors.New(errors.CodeIOUnsupported, "command resource has no input primitive"),
			"program", c.program,
		)
	}
	return c.stream.Write(p)
}

// WriteString sends s to the running command's input.
func (c *Command) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// Close drops the current invocation. Closing twice is not an error. A
// closed command starts a fresh invocation on the next read.
func (c *Command) Close() error {
	return c.stream.Close()
}

// Reopen closes the current invocation and retargets the command. Program
// and arguments are replaced together; the next read starts the new
// invocation, whose output is never interleaved with the prior one's.
// Returns the same Command.
func (c *Command) Reopen(program string, args ...string) (*Command, error) {
	if err := c.Close(); err != nil {
		return c, err
	}
	c.program = program
	c.args = append([]string(nil), args...)
	return c, nil
}

// Program returns the program name.
func (c *Command) Program() string {
	return c.program
}

// Args returns a copy of the argument list.
func (c *Command) Args() []string {
	return append([]string(nil), c.args...)
}

// EOF reports whether the current invocation's output is exhausted.
func (c *Command) EOF() bool {
	return c.stream.EOF()
}

// String renders the invocation as the program followed by its arguments,
// space-joined. This is the invocation, not its output.
func (c *Command) String() string {
	if len(c.args) == 0 {
		return c.program
	}
	return c.program + " " + strings.Join(c.args, " ")
}
