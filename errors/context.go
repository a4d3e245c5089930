package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new CodedError with the context field added.
// Existing context fields are preserved.
//
// If err is not a CodedError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeIOUnsupported, "no write primitive")
//	err = errors.WithContext(err, "path", f.Path())
func WithContext(err error, key string, value interface{}) CodedError {
	if err == nil {
		return nil
	}

	var coded CodedError
	if !errors.As(err, &coded) {
		// Wrap standard error as CodedError
		coded = &codedError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			context:        nil,
			cause:          err,
		}
	}

	// Create new context with existing fields plus new field
	newContext := make(map[string]interface{})
	if existingCtx := coded.Context(); existingCtx != nil {
		for k, v := range existingCtx {
			newContext[k] = v
		}
	}
	newContext[key] = value

	return &codedError{
		code:           coded.Code(),
		classification: coded.Classification(),
		message:        coded.Message(),
		context:        newContext,
		cause:          coded.Unwrap(),
	}
}

// WithContextMap adds multiple context fields to an error.
// Returns a new CodedError with the context fields merged.
// Existing context fields are preserved; new fields override existing ones
// with the same key.
//
// If err is not a CodedError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) CodedError {
	if err == nil {
		return nil
	}

	var coded CodedError
	if !errors.As(err, &coded) {
		coded = &codedError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			context:        nil,
			cause:          err,
		}
	}

	newContext := make(map[string]interface{})
	if existingCtx := coded.Context(); existingCtx != nil {
		for k, v := range existingCtx {
			newContext[k] = v
		}
	}
	for k, v := range ctx {
		newContext[k] = v
	}

	return &codedError{
		code:           coded.Code(),
		classification: coded.Classification(),
		message:        coded.Message(),
		context:        newContext,
		cause:          coded.Unwrap(),
	}
}
