package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with additional context while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is a CodedError, its classification is preserved.
// Otherwise, the default classification for the error code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := ctrl.ReadWholeFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeNetwork, "whole-file read failed")
//	}
func Wrap(err error, code ErrorCode, message string) CodedError {
	if err == nil {
		return nil
	}

	// Preserve classification if wrapping a CodedError
	classification := getDefaultClassification(code)
	var coded CodedError
	if errors.As(err, &coded) {
		classification = coded.Classification()
	}

	return &codedError{
		code:           code,
		classification: classification,
		message:        message,
		context:        nil,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) CodedError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := producer.Next(); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeExecutionFailed, "command read failed", map[string]interface{}{
//	        "program": c.program,
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) CodedError {
	if err == nil {
		return nil
	}

	// Preserve classification if wrapping a CodedError
	classification := getDefaultClassification(code)
	var coded CodedError
	if errors.As(err, &coded) {
		classification = coded.Classification()
	}

	// Create defensive copy of context
	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			contextCopy[k] = v
		}
	}

	return &codedError{
		code:           code,
		classification: classification,
		message:        message,
		context:        contextCopy,
		cause:          err,
	}
}
