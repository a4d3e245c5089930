package resource

import "strings"

// Primitive is a named backend operation a controller may or may not
// implement. The probe is a pure function of the controller's type (a type
// assertion against the primitive's interface), so probing the same
// controller always yields the same answer.
type Primitive struct {
	name  string
	probe func(Controller) bool
}

// Name returns the primitive's declared wire name (e.g. "read-chunk").
func (p Primitive) Name() string {
	return p.name
}

// ImplementedBy reports whether the controller implements this primitive.
func (p Primitive) ImplementedBy(ctrl Controller) bool {
	return p.probe(ctrl)
}

// primitive builds a Primitive whose probe asserts the controller against T.
func primitive[T any](name string) Primitive {
	return Primitive{
		name: name,
		probe: func(ctrl Controller) bool {
			_, ok := ctrl.(T)
			return ok
		},
	}
}

// The declared primitives. Names match the controller primitive contract.
var (
	OpenFile      = primitive[FileOpener]("open-file")
	ReadWholeFile = primitive[WholeFileReader]("read-whole-file")
	ReadChunk     = primitive[ChunkReader]("read-chunk")
	WriteChunk    = primitive[ChunkWriter]("write-chunk")
	CloseFile     = primitive[FileCloser]("close-file")
	SeekFile      = primitive[FileSeeker]("seek-file")
	TellFile      = primitive[FileTeller]("tell-file")
	StatFile      = primitive[FileStatter]("stat-file")
	Ioctl         = primitive[Ioctler]("ioctl")
	Fcntl         = primitive[Fcntler]("fcntl")
	Execute       = primitive[CommandExecutor]("execute")
	SendInput     = primitive[InputSender]("send-input")
)

// AnyOf builds a composite primitive satisfied when the controller
// implements at least one of the alternatives. Capability tables use it to
// express fallback chains declaratively (e.g. whole-file read before
// chunked read) so Supports reflects whether an operation is actually
// usable, not which primitive a call path happens to touch.
func AnyOf(alternatives ...Primitive) Primitive {
	names := make([]string, len(alternatives))
	for i, alt := range alternatives {
		names[i] = alt.name
	}
	return Primitive{
		name: strings.Join(names, "|"),
		probe: func(ctrl Controller) bool {
			for _, alt := range alternatives {
				if alt.probe(ctrl) {
					return true
				}
			}
			return false
		},
	}
}
