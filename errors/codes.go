// Package errors provides the structured error system shared by every
// resource type. It extends Go's standard error handling with string error
// codes, retry classification, context preservation, and API serialization.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Capability errors.

	// CodeCapabilityMissing indicates a required controller primitive is not
	// implemented by the bound controller. Raised before any backend call is
	// attempted.
	CodeCapabilityMissing ErrorCode = "CAPABILITY_MISSING"

	// CodeIOUnsupported indicates a stream-level read or write has no viable
	// backend primitive among its documented fallbacks.
	CodeIOUnsupported ErrorCode = "IO_UNSUPPORTED"

	// CodeNotImplemented indicates an optional resource behavior that the
	// concrete resource type does not extend (e.g. an interactive console).
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Resource errors.

	// CodeNotFound indicates the backend primitive exists and was invoked,
	// but the target it was invoked against does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeEndOfStream is the normal termination signal for read operations
	// once the underlying producer is exhausted. It is not a fault; errors
	// carrying this code wrap io.EOF.
	CodeEndOfStream ErrorCode = "END_OF_STREAM"

	// CodeClosed indicates an operation on a closed resource or stream.
	CodeClosed ErrorCode = "CLOSED"

	// CodeIOError indicates a backend read or write faulted mid-stream.
	// Distinct from CodeEndOfStream, which is normal termination.
	CodeIOError ErrorCode = "IO_ERROR"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Backend errors.

	// CodeExecutionFailed indicates a backend command invocation failed.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// CodeNetwork indicates a network operation against a remote backend failed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
