package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/altora/backoffice/pkg/composables"
	"github.com/altora/backoffice/pkg/intl"
	"github.com/altora/backoffice/pkg/types"
)

// NavProvider is the subset of the app the page context needs.
type NavProvider interface {
	NavItems() []types.NavigationItem
}

func translateNav(localizer *i18n.Localizer, items []types.NavigationItem) []types.NavigationItem {
	translated := make([]types.NavigationItem, 0, len(items))
	for _, item := range items {
		name, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: item.Name})
		if err != nil {
			name = item.Name
		}
		translated = append(translated, types.NavigationItem{
			Name:     name,
			Href:     item.Href,
			Icon:     item.Icon,
			Children: translateNav(localizer, item.Children),
		})
	}
	return translated
}

// WithPageContext builds the template-facing page context from the localizer
// and navigation registered by modules. Must run after ProvideLocalizer.
func WithPageContext(app NavProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				localizer, found := intl.UseLocalizer(r.Context())
				if !found {
					panic(intl.ErrNoLocalizer)
				}
				locale, ok := intl.UseLocale(r.Context())
				if !ok {
					panic("locale not found")
				}
				pageCtx := &types.PageContext{
					URL:       r.URL,
					Localizer: localizer,
					Locale:    locale,
					NavItems:  translateNav(localizer, app.NavItems()),
				}
				next.ServeHTTP(w, r.WithContext(composables.WithPageCtx(r.Context(), pageCtx)))
			},
		)
	}
}
