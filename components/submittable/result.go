package submittable

import "strings"

// Response is the successful outcome of a submit callback.
type Response struct {
	// Message, when present, is surfaced as a success notification.
	Message string
}

// FieldError is one field-level failure inside a rejected submission.
type FieldError struct {
	Field   string
	Message string
}

// SubmitError is a structured submission failure. FieldErrors is ordered;
// notifications are emitted in slice order, one per entry.
type SubmitError struct {
	FieldErrors []FieldError
}

func (e *SubmitError) Error() string {
	if len(e.FieldErrors) == 0 {
		return "submission failed"
	}
	msgs := make([]string, len(e.FieldErrors))
	for i, fe := range e.FieldErrors {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "submission failed: " + strings.Join(msgs, "; ")
}
