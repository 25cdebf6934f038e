package layouts

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/altora/backoffice/pkg/composables"
)

// Base wraps page content in the admin chrome: document head, sidebar
// navigation and the flash message slot. Assembled by hand instead of
// generated markup so the layout stays a plain Go value.
func Base(pageTitle string, flash *composables.FlashMessage, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)

		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="`)
		b.WriteString(templ.EscapeString(pageCtx.Locale.String()))
		b.WriteString(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>`)
		b.WriteString(templ.EscapeString(pageTitle))
		b.WriteString(`</title>`)
		b.WriteString(`<link rel="stylesheet" href="/assets/css/main.css">`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		b.WriteString(`</head><body><div class="layout">`)

		b.WriteString(`<nav class="sidebar"><ul>`)
		for _, item := range pageCtx.NavItems {
			b.WriteString(`<li><a href="`)
			b.WriteString(templ.EscapeString(item.Href))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(item.Name))
			b.WriteString(`</a></li>`)
		}
		b.WriteString(`</ul></nav>`)

		b.WriteString(`<main class="content">`)
		if flash != nil {
			b.WriteString(`<div class="alert alert-`)
			b.WriteString(templ.EscapeString(flash.Variant))
			b.WriteString(`" role="alert">`)
			b.WriteString(templ.EscapeString(flash.Message))
			b.WriteString(`</div>`)
		}
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}
