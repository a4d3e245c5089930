package resource

import (
	"io"
	"sort"

	"github.com/yonasBSD/ronin-post-ex/errors"
)

// Table maps a resource-level operation name to the ordered set of
// primitives the controller must implement for that operation to be usable.
// Tables are built once per resource type at definition time and are
// read-only thereafter; all instances of the type share the same table, so
// concurrent reads are safe.
type Table map[string][]Primitive

// Operations returns the operation names declared in the table, sorted.
func (t Table) Operations() []string {
	ops := make([]string, 0, len(t))
	for op := range t {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Resource is the base every concrete resource type embeds. It holds the
// non-owning controller reference and the type's capability table, and
// provides the capability-dispatch machinery.
//
// Resources assume single-threaded, single-owner use; the base performs no
// locking.
type Resource struct {
	kind  string
	ctrl  Controller
	table Table
}

// New binds a resource base of the given kind to a controller.
// The kind names the concrete resource type in error messages ("file",
// "command").
func New(kind string, ctrl Controller, table Table) Resource {
	return Resource{
		kind:  kind,
		ctrl:  ctrl,
		table: table,
	}
}

// Kind returns the resource type name.
func (r *Resource) Kind() string {
	return r.kind
}

// Controller returns the bound controller.
func (r *Resource) Controller() Controller {
	return r.ctrl
}

// Supports reports whether every named operation is usable against the
// bound controller: for each operation, all primitives in its declared
// requirement set must be implemented. Naming an operation absent from the
// capability table is an INVALID_INPUT error, not "unsupported".
func (r *Resource) Supports(ops ...string) (bool, error) {
	for _, op := range ops {
		required, ok := r.table[op]
		if !ok {
			return false, errors.Newf(errors.CodeInvalidInput,
				"unknown operation %q on %s resource", op, r.kind)
		}
		for _, prim := range required {
			if !prim.ImplementedBy(r.ctrl) {
				return false, nil
			}
		}
	}
	return true, nil
}

// Supported returns the sorted set of operation names for which Supports
// would return true.
func (r *Resource) Supported() []string {
	var ops []string
	for op := range r.table {
		ok, err := r.Supports(op)
		if err == nil && ok {
			ops = append(ops, op)
		}
	}
	sort.Strings(ops)
	return ops
}

// RequireCapability fails with a CAPABILITY_MISSING error if the controller
// lacks the given primitive. It is the guard for primitives that have no
// graceful degradation (ioctl, fcntl, execute); the error names both the
// missing primitive and the resource kind, and is raised before any backend
// call is attempted.
func (r *Resource) RequireCapability(prim Primitive) error {
	if prim.ImplementedBy(r.ctrl) {
		return nil
	}
	return errors.WithContext(
		errors.Newf(errors.CodeCapabilityMissing,
			"%s resource requires controller primitive %q", r.kind, prim.Name()),
		"primitive", prim.Name(),
	)
}

// Console returns an interactive session with the resource. The default
// behavior fails with NOT_IMPLEMENTED; resource types that provide an
// interactive session shadow this method.
func (r *Resource) Console() (io.ReadWriter, error) {
	return nil, errors.Newf(errors.CodeNotImplemented,
		"%s resource does not provide an interactive console", r.kind)
}
