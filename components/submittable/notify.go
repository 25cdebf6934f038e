package submittable

// Notifier surfaces user-visible toasts. Injected so hosts decide how
// notifications render.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NopNotifier drops all notifications. Used when no notifier is configured.
type NopNotifier struct{}

func (NopNotifier) Success(message string) {}
func (NopNotifier) Error(message string)   {}
