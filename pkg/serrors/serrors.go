package serrors

import (
	"github.com/iota-uz/go-i18n/v2/i18n"
)

// Base is a coded error that optionally carries a locale key so the
// presentation layer can render a translated message.
type Base struct {
	Code      string
	Message   string
	LocaleKey string
}

func NewError(code, message, localeKey string) *Base {
	return &Base{
		Code:      code,
		Message:   message,
		LocaleKey: localeKey,
	}
}

func (e *Base) Error() string {
	return e.Message
}

// Localized renders the error for the user. Falls back to the raw message
// when no locale key is set or the key is missing from the bundle.
func (e *Base) Localized(l *i18n.Localizer) string {
	if e.LocaleKey == "" {
		return e.Message
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID: e.LocaleKey,
	})
	if err != nil {
		return e.Message
	}
	return msg
}
