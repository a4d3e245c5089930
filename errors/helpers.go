package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a CodedError.
//
// This function handles the error chain and will extract the code from
// the outermost CodedError in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeEndOfStream {
//	    // Normal termination, not a fault
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var coded CodedError
	if stderrors.As(err, &coded) {
		return coded.Code()
	}

	return CodeUnknown
}

// IsCode reports whether the outermost CodedError in err's chain carries the
// given code. Returns false for nil errors and plain errors.
//
// This is the primary predicate tests and callers use to distinguish the
// error kinds a resource can surface (e.g. CAPABILITY_MISSING vs NOT_FOUND).
func IsCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not a CodedError.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var coded CodedError
	if stderrors.As(err, &coded) {
		return coded.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not a CodedError (safe default).
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
