package submittable

// CSS classes and glyphs making up the widget's visual contract.
const (
	ClassActive  = "active"
	ClassHidden  = "d-none"
	ClassInvalid = "is-invalid"
)

type Icon string

const (
	IconCheck   Icon = "check"
	IconSpinner Icon = "spinner"
)

// Element is the narrow view of a DOM node the widget needs. Implementations
// must be comparable (pointers) since the widget keys per-input state on them.
type Element interface {
	Value() Value
	SetValue(v Value)
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	SetDisabled(disabled bool)
	Disabled() bool
	SetIcon(icon Icon)
}

// Scope resolves the companion submit button for a managed input. One scope
// container holds exactly one input and one button; a widget instance may
// govern several containers.
type Scope interface {
	ButtonFor(input Element) Element
}
