package types

import (
	"net/url"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// PageContext carries per-request localization and navigation state into
// templates.
type PageContext struct {
	URL       *url.URL
	Localizer *i18n.Localizer
	Locale    language.Tag
	NavItems  []NavigationItem
}

// T translates a message ID with optional template data. Panics on a missing
// message; use TSafe in templates where a blank is preferable to a 500.
func (p *PageContext) T(key string, args ...map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{MessageID: key}
	if len(args) > 0 {
		cfg.TemplateData = args[0]
	}
	return p.Localizer.MustLocalize(cfg)
}

func (p *PageContext) TSafe(key string, args ...map[string]interface{}) string {
	cfg := &i18n.LocalizeConfig{MessageID: key}
	if len(args) > 0 {
		cfg.TemplateData = args[0]
	}
	msg, err := p.Localizer.Localize(cfg)
	if err != nil {
		return ""
	}
	return msg
}
