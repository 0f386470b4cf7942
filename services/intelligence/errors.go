package ai

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// TransientServiceError marks a generation failure worth retrying, e.g. the
// model being temporarily overloaded.
type TransientServiceError struct {
	Code    int
	Message string
}

func (e *TransientServiceError) Error() string {
	return fmt.Sprintf("generation service busy (%d): %s", e.Code, e.Message)
}

// FatalServiceError marks a generation failure that no retry will fix, e.g.
// the model route not existing.
type FatalServiceError struct {
	Code    int
	Message string
}

func (e *FatalServiceError) Error() string {
	return fmt.Sprintf("generation service error (%d): %s", e.Code, e.Message)
}

// MalformedPayloadError marks a response in which no usable itinerary JSON
// could be located or validated.
type MalformedPayloadError struct {
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return "malformed generation payload: " + e.Reason
}

// classifyServiceError maps a raw generation error onto the retry taxonomy.
// Overload-class HTTP codes become transient; everything else, including plain
// network failures, is fatal and falls back immediately.
func classifyServiceError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 500, 502, 503:
			return &TransientServiceError{Code: apiErr.Code, Message: apiErr.Message}
		default:
			return &FatalServiceError{Code: apiErr.Code, Message: apiErr.Message}
		}
	}
	return &FatalServiceError{Message: err.Error()}
}

// isTransient reports whether err is in the retryable class.
func isTransient(err error) bool {
	var transient *TransientServiceError
	return errors.As(err, &transient)
}
