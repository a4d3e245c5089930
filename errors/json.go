package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure for errors crossing an API
// boundary. It provides a flat, serializable representation of errors without
// exposing internal error chains.
//
// The wrapped error chain is intentionally excluded: chains from a remote
// controller may contain backend paths, handles, or other internal detail.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For CodedError instances, extracts code, message, classification, and context.
// For standard errors, uses CodeUnknown, ClassificationPermanent, and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var coded CodedError
	if As(err, &coded) {
		return &ErrorResponse{
			Code:           string(coded.Code()),
			Message:        coded.Message(),
			Classification: string(coded.Classification()),
			Context:        coded.Context(),
		}
	}

	return &ErrorResponse{
		Code:           string(CodeUnknown),
		Message:        err.Error(),
		Classification: string(ClassificationPermanent),
		Context:        nil,
	}
}

// MarshalJSON serializes the error response to JSON bytes.
func (r *ErrorResponse) MarshalJSON() ([]byte, error) {
	type alias ErrorResponse
	return json.Marshal((*alias)(r))
}
