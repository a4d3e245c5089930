package local

import (
	"context"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Controller executes resource primitives against the local machine: files
// through a billy filesystem and commands through the os process table. It
// deliberately implements only a subset of the primitive contract; whole
// file reads, cursor queries, and device control are left to the resource
// layer's documented fallbacks.
type Controller struct {
	fs  billy.Filesystem
	ctx context.Context
	env map[string]string
	dir string

	inheritEnv bool
	proc       *lineProducer
}

// Option configures controller creation.
type Option func(*Controller)

// WithFilesystem backs file primitives with the given filesystem instead
// of the host root. Used with memfs in tests.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(c *Controller) {
		c.fs = fs
	}
}

// WithContext sets the context command invocations run under. Canceling it
// kills any running invocation.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		c.ctx = ctx
	}
}

// WithEnv sets environment variables for command invocations. On its own
// it replaces the inherited environment with exactly these variables;
// combine with WithInheritEnv to add them to the parent's instead.
func WithEnv(env map[string]string) Option {
	return func(c *Controller) {
		if c.env == nil {
			c.env = make(map[string]string)
		}
		for k, v := range env {
			c.env[k] = v
		}
	}
}

// WithInheritEnv keeps the parent process environment when WithEnv would
// otherwise replace it; the invocation sees the parent's variables plus
// the configured ones.
func WithInheritEnv() Option {
	return func(c *Controller) {
		c.inheritEnv = true
	}
}

// WithDir sets the working directory for command invocations.
func WithDir(dir string) Option {
	return func(c *Controller) {
		c.dir = dir
	}
}

// New creates a local controller. Without options it serves the host
// filesystem rooted at "/" and runs commands with the parent process
// environment.
func New(opts ...Option) *Controller {
	c := &Controller{
		fs:  osfs.New("/"),
		ctx: context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
