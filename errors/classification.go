package errors

// ErrorClassification indicates whether an error should trigger a retry.
// Callers driving a flaky remote controller use this to decide whether an
// operation is worth re-issuing or represents a permanent failure.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: network timeouts against a remote controller.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: missing capabilities, invalid input, exhausted streams.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Retryable errors (temporary failures)
	CodeNetwork: ClassificationRetryable,
	CodeTimeout: ClassificationRetryable,

	// Permanent errors (will not succeed on retry)
	CodeCapabilityMissing: ClassificationPermanent,
	CodeIOUnsupported:     ClassificationPermanent,
	CodeNotImplemented:    ClassificationPermanent,
	CodeNotFound:          ClassificationPermanent,
	CodeEndOfStream:       ClassificationPermanent,
	CodeClosed:            ClassificationPermanent,
	CodeIOError:           ClassificationPermanent,
	CodeInvalidInput:      ClassificationPermanent,
	CodeInvalidConfig:     ClassificationPermanent,
	CodeExecutionFailed:   ClassificationPermanent,
	CodeInternal:          ClassificationPermanent,
	CodeUnknown:           ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
