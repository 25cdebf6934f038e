package titles

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/altora/backoffice/modules/customers/presentation/templates/layouts"
	"github.com/altora/backoffice/modules/customers/presentation/viewmodels"
	"github.com/altora/backoffice/pkg/composables"
)

type IndexPageProps struct {
	Titles  []*viewmodels.Title
	NewURL  string
	BulkURL string
	Page    int
	PerPage int
	Total   int64
	Flash   *composables.FlashMessage
}

type CreatePageProps struct {
	Title    *viewmodels.Title
	Errors   map[string]string
	PostPath string
}

type EditPageProps struct {
	Title     *viewmodels.Title
	Errors    map[string]string
	SaveURL   string
	DeleteURL string
}

func Index(props *IndexPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		header := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			var b strings.Builder
			b.WriteString(`<div class="page-header"><h1>`)
			b.WriteString(templ.EscapeString(pageCtx.T("Titles.List.Title")))
			b.WriteString(`</h1><a class="btn btn-primary" href="`)
			b.WriteString(templ.EscapeString(props.NewURL))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(pageCtx.T("Titles.List.New")))
			b.WriteString(`</a></div>`)
			if _, err := io.WriteString(w, b.String()); err != nil {
				return err
			}
			return TitlesTable(props).Render(ctx, w)
		})
		return layouts.Base(pageCtx.T("Titles.Meta.List.Title"), props.Flash, header).Render(ctx, w)
	})
}

// TitlesTable is the htmx partial re-rendered on pagination.
func TitlesTable(props *IndexPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)

		var b strings.Builder
		b.WriteString(`<div id="titles-table">`)
		b.WriteString(`<form method="post" action="`)
		b.WriteString(templ.EscapeString(props.BulkURL))
		b.WriteString(`"><table class="table"><thead><tr><th></th><th>`)
		b.WriteString(templ.EscapeString(pageCtx.T("Titles.List.Name")))
		b.WriteString(`</th><th>`)
		b.WriteString(templ.EscapeString(pageCtx.T("Titles.List.CreatedAt")))
		b.WriteString(`</th><th></th></tr></thead><tbody>`)
		for _, t := range props.Titles {
			b.WriteString(`<tr><td><input type="checkbox" name="ids" value="`)
			b.WriteString(templ.EscapeString(t.ID))
			b.WriteString(`"></td><td>`)
			b.WriteString(templ.EscapeString(t.Name))
			b.WriteString(`</td><td>`)
			b.WriteString(templ.EscapeString(t.CreatedAt))
			b.WriteString(`</td><td><a class="btn btn-sm" href="/customers/titles/`)
			b.WriteString(templ.EscapeString(t.ID))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(pageCtx.T("Titles.List.Edit")))
			b.WriteString(`</a></td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
		b.WriteString(`<button type="submit" class="btn btn-danger">`)
		b.WriteString(templ.EscapeString(pageCtx.T("Titles.List.BulkDelete")))
		b.WriteString(`</button></form>`)

		if props.PerPage > 0 && props.Total > int64(props.PerPage) {
			b.WriteString(`<nav class="pagination">`)
			totalPages := int((props.Total + int64(props.PerPage) - 1) / int64(props.PerPage))
			for page := 1; page <= totalPages; page++ {
				cls := "page-link"
				if page == props.Page {
					cls += " active"
				}
				fmt.Fprintf(&b,
					`<a class="%s" hx-get="?page=%d" hx-target="#titles-table" hx-swap="outerHTML">%d</a>`,
					cls, page, page,
				)
			}
			b.WriteString(`</nav>`)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func New(props *CreatePageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		return layouts.Base(pageCtx.T("Titles.Meta.New.Title"), nil, CreateForm(props)).Render(ctx, w)
	})
}

func CreateForm(props *CreatePageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		var b strings.Builder
		b.WriteString(`<h1>`)
		b.WriteString(templ.EscapeString(pageCtx.T("Titles.New.Title")))
		b.WriteString(`</h1>`)
		writeTitleForm(&b, pageCtx.T("Titles.Form.Save"), props.PostPath, props.Title.Name, props.Errors)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func Edit(props *EditPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		return layouts.Base(pageCtx.T("Titles.Meta.Edit.Title"), nil, EditForm(props)).Render(ctx, w)
	})
}

func EditForm(props *EditPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		var b strings.Builder
		b.WriteString(`<h1>`)
		b.WriteString(templ.EscapeString(pageCtx.T("Titles.Edit.Title")))
		b.WriteString(`</h1>`)
		writeTitleForm(&b, pageCtx.T("Titles.Form.Save"), props.SaveURL, props.Title.Name, props.Errors)
		b.WriteString(`<button class="btn btn-danger" hx-delete="`)
		b.WriteString(templ.EscapeString(props.DeleteURL))
		b.WriteString(`">`)
		b.WriteString(templ.EscapeString(pageCtx.T("Titles.Edit.Delete")))
		b.WriteString(`</button>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeTitleForm renders the name field with the submittable markup contract:
// the companion button starts hidden and the input carries is-invalid when a
// server-side error is attached to it.
func writeTitleForm(b *strings.Builder, saveLabel, action, name string, errs map[string]string) {
	b.WriteString(`<form id="title-form" method="post" action="`)
	b.WriteString(templ.EscapeString(action))
	b.WriteString(`"><div class="form-group" data-submittable>`)
	inputClass := "form-control"
	if _, ok := errs["Name"]; ok {
		inputClass += " is-invalid"
	}
	fmt.Fprintf(b, `<input type="text" name="Name" class="%s" value="%s">`, inputClass, templ.EscapeString(name))
	b.WriteString(`<button type="submit" class="btn d-none" data-submittable-button><span class="icon icon-check"></span></button>`)
	if msg, ok := errs["Name"]; ok {
		b.WriteString(`<div class="invalid-feedback">`)
		b.WriteString(templ.EscapeString(msg))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	fmt.Fprintf(b, `<button type="submit" class="btn btn-primary">%s</button>`, templ.EscapeString(saveLabel))
	b.WriteString(`</form>`)
}
