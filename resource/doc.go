// Package resource provides the controller primitive contract, the
// capability registry, and the base type every remote resource is built on.
//
// A controller is an opaque, caller-supplied object that talks to some
// backend (a local machine, an agent on a remote target, an object store).
// Controllers are identified only by which primitive operations they
// implement; a controller that can read whole files but cannot seek is
// perfectly valid. Resources bound to a controller discover what it can do
// and degrade or fail predictably rather than assuming full support.
//
// # Design Philosophy
//
//   - Primitives are small single-method interfaces: a controller opts into
//     a primitive by implementing its interface, and capability discovery is
//     a type assertion, never reflection.
//   - Capability requirements are declarative: each resource type declares,
//     once at definition time, which primitives each of its operations needs.
//     The resulting table is read-only and shared by all instances.
//   - Capability checks are stable: Supports answers from the table and the
//     controller's static type, independent of call order and of which
//     primitives a particular call path happens to touch.
//
// # Declaring Capability Tables
//
// Concrete resource types build a Table at package init and embed Resource:
//
//	var fileTable = resource.Table{
//	    "read":  {resource.AnyOf(resource.ReadWholeFile, resource.ReadChunk)},
//	    "write": {resource.WriteChunk},
//	    "stat":  {resource.StatFile},
//	}
//
// Operations whose requirement set is empty (e.g. a seek that can fall back
// to logical repositioning) are always supported.
//
// # Checking Capabilities
//
//	ok, err := f.Supports("read", "write")
//	if err != nil {
//	    // unknown operation name
//	}
//	if !ok {
//	    // controller lacks a required primitive
//	}
//
// Primitives with no graceful degradation are guarded with RequireCapability,
// which fails with a CAPABILITY_MISSING error naming the missing primitive
// and the resource kind before any backend call is attempted.
package resource
