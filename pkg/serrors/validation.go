package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"
)

// FieldError describes a single failed validation rule for one form field.
type FieldError struct {
	Field          string
	Rule           string
	FieldLocaleKey string
	// Fallback is used verbatim when localization is unavailable.
	Fallback string
}

type ValidationErrors map[string]*FieldError

// ProcessValidatorErrors converts go-playground validator output into field
// errors keyed by struct field name. fieldLocaleKey maps a field name to the
// locale key of its human-readable label; an empty result leaves the raw
// field name in place.
func ProcessValidatorErrors(
	errs validator.ValidationErrors,
	fieldLocaleKey func(field string) string,
) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, err := range errs {
		field := err.Field()
		out[field] = &FieldError{
			Field:          field,
			Rule:           err.Tag(),
			FieldLocaleKey: fieldLocaleKey(field),
			Fallback:       err.Error(),
		}
	}
	return out
}

// LocalizeValidationErrors renders each field error using the
// "ValidationErrors.<rule>" messages, substituting the localized field label.
func LocalizeValidationErrors(errs ValidationErrors, l *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(errs))
	for field, fieldErr := range errs {
		label := field
		if fieldErr.FieldLocaleKey != "" {
			if localized, err := l.Localize(&i18n.LocalizeConfig{
				MessageID: fieldErr.FieldLocaleKey,
			}); err == nil {
				label = localized
			}
		}
		msg, err := l.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("ValidationErrors.%s", fieldErr.Rule),
			TemplateData: map[string]interface{}{
				"Field": label,
			},
		})
		if err != nil {
			msg = fieldErr.Fallback
		}
		out[field] = msg
	}
	return out
}
