package submittable

// SubmittedEvent is published on the configured event bus after a successful
// submission that carried a message.
type SubmittedEvent struct {
	Input Element
}

// SubmitErrorEvent is published on every failed submission, structured or not.
type SubmitErrorEvent struct {
	Input Element
	Err   error
}
