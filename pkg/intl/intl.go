package intl

import (
	"context"
	"errors"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type SupportedLanguage struct {
	Code        string
	VerboseName string
	Tag         language.Tag
}

var allSupportedLanguages = []SupportedLanguage{
	{
		Code:        "en",
		VerboseName: "English",
		Tag:         language.English,
	},
	{
		Code:        "zh",
		VerboseName: "中文",
		Tag:         language.Chinese,
	},
}

// SupportedLanguages is the default list (all languages supported by the runtime).
var SupportedLanguages = allSupportedLanguages

// GetSupportedLanguages returns a filtered list of supported languages based
// on the whitelist. If whitelist is empty, all supported languages are returned.
func GetSupportedLanguages(whitelist []string) []SupportedLanguage {
	if len(whitelist) == 0 {
		return allSupportedLanguages
	}
	whitelistMap := make(map[string]bool, len(whitelist))
	for _, code := range whitelist {
		whitelistMap[code] = true
	}
	filtered := make([]SupportedLanguage, 0, len(whitelist))
	for _, lang := range allSupportedLanguages {
		if whitelistMap[lang.Code] {
			filtered = append(filtered, lang)
		}
	}
	return filtered
}

var ErrNoLocalizer = errors.New("localizer not found in context")

type contextKey int

const (
	localizerKey contextKey = iota
	localeKey
)

func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, localizerKey, l)
}

// UseLocalizer returns the request-scoped localizer.
// The second return value reports whether one was found.
func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	l, ok := ctx.Value(localizerKey).(*i18n.Localizer)
	return l, ok
}

// MustUseLocalizer panics when no localizer is attached to the context.
func MustUseLocalizer(ctx context.Context) *i18n.Localizer {
	l, ok := UseLocalizer(ctx)
	if !ok {
		panic(ErrNoLocalizer)
	}
	return l
}

func WithLocale(ctx context.Context, locale language.Tag) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

func UseLocale(ctx context.Context) (language.Tag, bool) {
	locale, ok := ctx.Value(localeKey).(language.Tag)
	return locale, ok
}
