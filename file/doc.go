// Package file provides the file resource: random-access-like emulation
// over a controller that may only support a subset of the file primitives,
// plus the Stat value object for file metadata.
//
// A File routes its stream operations through the buffered stream adapter,
// supplying hooks that call whichever controller primitives exist. Reads
// prefer an atomic whole-file transfer when the controller offers one and
// fall back to positioned chunk reads; backends with neither make reads
// fail with IO_UNSUPPORTED. Seeking works even without a backend seek
// primitive, in which case only absolute repositioning is resolvable.
//
// Low-level device and file control (Ioctl, Fcntl) require their exact
// primitives; no emulation is attempted for these.
package file
