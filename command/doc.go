// Package command implements the command resource: a program invocation on
// the bound controller whose output is consumed as a lazy, pull-based
// sequence of lines.
//
// Output is routed through the buffered stream adapter with one producer
// line per chunk, so byte-level, line-level, and read-everything access
// all drain the same buffer. Execution does not start at construction:
// the first read triggers the controller's execute primitive, and each
// buffer refill pulls one more line until the producer is exhausted, at
// which point the end-of-stream latch keeps further reads off the
// backend. Sending input to the running command is a separate
// capability from executing it; a controller may support either without
// the other.
package command
