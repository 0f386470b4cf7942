package trip

import (
	"errors"
	"fmt"
)

// ErrSessionBusy is returned when a session still has a generation request
// outstanding; duplicate submissions and mutations are rejected until the
// itinerary is ready.
var ErrSessionBusy = errors.New("trip session has a generation request in flight")

// ErrActivityNotFound is returned when a completion or note update names an
// activity ID that is not part of the itinerary.
var ErrActivityNotFound = errors.New("activity not found in itinerary")

// ValidationError reports a problem with the submitted planning form itself.
// This is the only failure class surfaced to the caller as an error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
