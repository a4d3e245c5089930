package local

import (
	"bufio"
	"io"
	osexec "os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/yonasBSD/ronin-post-ex/errors"
	"github.com/yonasBSD/ronin-post-ex/resource"
)

// lineBacklog bounds how far the output pump may run ahead of the consumer.
const lineBacklog = 64

// lineProducer runs one process and yields its merged stdout and stderr
// line by line. The process is not started until the first pull or the
// first input write.
type lineProducer struct {
	cmd     *osexec.Cmd
	started bool
	stdin   io.WriteCloser
	lines   chan string
	g       *errgroup.Group
}

func (p *lineProducer) start() error {
	pr, pw := io.Pipe()
	p.cmd.Stdout = pw
	p.cmd.Stderr = pw

	stdin, err := p.cmd.StdinPipe()
	if err != nil {
		return errors.Wrap(err, errors.CodeExecutionFailed, "stdin pipe")
	}
	if err := p.cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.CodeExecutionFailed, "starting %s", p.cmd.Path)
	}
	p.stdin = stdin
	p.started = true
	p.lines = make(chan string, lineBacklog)

	p.g = new(errgroup.Group)
	p.g.Go(func() error {
		err := p.cmd.Wait()
		_ = pw.Close()
		return err
	})
	p.g.Go(func() error {
		defer close(p.lines)
		sc := bufio.NewScanner(pr)
		for sc.Scan() {
			p.lines <- sc.Text()
		}
		return sc.Err()
	})
	return nil
}

// Next returns the next output line, starting the process on the first
// call. Exhaustion is reported as io.EOF once the process has exited and
// its output is drained; a nonzero exit is not a read error.
func (p *lineProducer) Next() (string, error) {
	if !p.started {
		if err := p.start(); err != nil {
			return "", err
		}
	}
	line, ok := <-p.lines
	if !ok {
		// Exit status is irrelevant to output consumption.
		_ = p.g.Wait()
		return "", io.EOF
	}
	return line, nil
}

// Execute prepares a process invocation and returns its lazy line
// producer. The producer becomes the target of subsequent input sends.
func (c *Controller) Execute(program string, arguments []string) (resource.LineProducer, error) {
	cmd := osexec.CommandContext(c.ctx, program, arguments...)
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	if c.inheritEnv {
		cmd.Env = cmd.Environ()
	}
	for k, v := range c.env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	p := &lineProducer{cmd: cmd}
	c.proc = p
	return p, nil
}

// SendInput writes data to the stdin of the current invocation, starting
// the process first if nothing has pulled a line yet.
func (c *Controller) SendInput(data []byte) (int, error) {
	p := c.proc
	if p == nil {
		return 0, errors.New(errors.CodeExecutionFailed, "no command invocation to send input to")
	}
	if !p.started {
		if err := p.start(); err != nil {
			return 0, err
		}
	}
	return p.stdin.Write(data)
}
