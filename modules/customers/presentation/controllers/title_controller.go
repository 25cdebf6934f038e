package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/altora/backoffice/modules/customers/domain/entities/title"
	"github.com/altora/backoffice/modules/customers/presentation/mappers"
	"github.com/altora/backoffice/modules/customers/presentation/templates/pages/titles"
	"github.com/altora/backoffice/modules/customers/presentation/viewmodels"
	"github.com/altora/backoffice/modules/customers/services"
	"github.com/altora/backoffice/pkg/application"
	"github.com/altora/backoffice/pkg/composables"
	"github.com/altora/backoffice/pkg/htmx"
	"github.com/altora/backoffice/pkg/intl"
	"github.com/altora/backoffice/pkg/mapping"
	"github.com/altora/backoffice/pkg/middleware"
	"github.com/altora/backoffice/pkg/serrors"
	"github.com/altora/backoffice/pkg/shared"
)

// errorLocaleKeys maps known domain errors to user-facing messages. Anything
// missing from this table surfaces its raw error text.
var errorLocaleKeys = map[*serrors.Base]string{
	title.ErrNotFound:  "Titles.Errors.NotFound",
	title.ErrNameTaken: "Titles.Errors.NameTaken",
	title.ErrInUse:     "Titles.Errors.InUse",
}

type TitleController struct {
	app          application.Application
	titleService *services.TitleService
	basePath     string
}

func NewTitleController(app application.Application) application.Controller {
	return &TitleController{
		app:          app,
		titleService: app.Service(services.TitleService{}).(*services.TitleService),
		basePath:     "/customers/titles",
	}
}

func (c *TitleController) Key() string {
	return c.basePath
}

func (c *TitleController) Register(r *mux.Router) {
	commonMiddleware := []mux.MiddlewareFunc{
		middleware.WithParams(),
		middleware.ProvideLocalizer(c.app),
		middleware.WithPageContext(c.app),
	}
	getRouter := r.PathPrefix(c.basePath).Subrouter()
	getRouter.Use(commonMiddleware...)
	getRouter.HandleFunc("", c.List).Methods(http.MethodGet)
	getRouter.HandleFunc("/new", c.GetNew).Methods(http.MethodGet)
	getRouter.HandleFunc("/{id:[0-9]+}", c.GetEdit).Methods(http.MethodGet)

	setRouter := r.PathPrefix(c.basePath).Subrouter()
	setRouter.Use(commonMiddleware...)
	setRouter.HandleFunc("", c.Create).Methods(http.MethodPost)
	setRouter.HandleFunc("/bulk-delete", c.BulkDelete).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}", c.Update).Methods(http.MethodPost)
	setRouter.HandleFunc("/{id:[0-9]+}", c.Delete).Methods(http.MethodDelete)
}

// titleSearchQuery filters the list by a name substring.
type titleSearchQuery struct {
	Query string
}

func (c *TitleController) List(w http.ResponseWriter, r *http.Request) {
	params := composables.UsePaginated(r)
	search, err := composables.UseQuery(&titleSearchQuery{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entities, err := c.titleService.GetPaginated(r.Context(), &title.FindParams{
		Limit:  params.Limit,
		Offset: params.Offset,
		Query:  search.Query,
	})
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to list titles")
		http.Error(w, "Error retrieving titles", http.StatusInternalServerError)
		return
	}
	total, err := c.titleService.Count(r.Context())
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to count titles")
		http.Error(w, "Error counting titles", http.StatusInternalServerError)
		return
	}
	flashMsg, _ := composables.UseFlashMessage(w, r)
	props := &titles.IndexPageProps{
		Titles:  mapping.MapViewModels(entities, mappers.TitleToViewModel),
		NewURL:  fmt.Sprintf("%s/new", c.basePath),
		BulkURL: fmt.Sprintf("%s/bulk-delete", c.basePath),
		Page:    params.Page,
		PerPage: params.Limit,
		Total:   total,
		Flash:   flashMsg,
	}
	// Boosted navigation still expects a full document.
	if htmx.IsHxRequest(r) && !htmx.IsBoosted(r) {
		templ.Handler(titles.TitlesTable(props), templ.WithStreaming()).ServeHTTP(w, r)
	} else {
		templ.Handler(titles.Index(props), templ.WithStreaming()).ServeHTTP(w, r)
	}
}

func (c *TitleController) GetNew(w http.ResponseWriter, r *http.Request) {
	props := &titles.CreatePageProps{
		Errors:   map[string]string{},
		Title:    &viewmodels.Title{},
		PostPath: c.basePath,
	}
	templ.Handler(titles.New(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *TitleController) Create(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&title.CreateDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if errorsMap, ok := dto.Ok(r.Context()); !ok {
		c.renderCreateForm(w, r, dto.Name, errorsMap)
		return
	}

	if err := c.titleService.Create(r.Context(), dto); err != nil {
		if errors.Is(err, title.ErrNameTaken) {
			c.renderCreateForm(w, r, dto.Name, map[string]string{
				"Name": c.errorMessage(r.Context(), err),
			})
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("failed to create title")
		http.Error(w, c.errorMessage(r.Context(), err), http.StatusInternalServerError)
		return
	}

	c.flash(w, r, "success", "Titles.Flash.Created", nil)
	shared.Redirect(w, r, c.basePath)
}

func (c *TitleController) GetEdit(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		http.Error(w, "Error parsing id", http.StatusBadRequest)
		return
	}
	entity, err := c.titleService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, title.ErrNotFound) {
			http.Error(w, c.errorMessage(r.Context(), err), http.StatusNotFound)
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("failed to get title")
		http.Error(w, "Error retrieving title", http.StatusInternalServerError)
		return
	}
	props := &titles.EditPageProps{
		Title:     mappers.TitleToViewModel(entity),
		Errors:    map[string]string{},
		SaveURL:   fmt.Sprintf("%s/%d", c.basePath, id),
		DeleteURL: fmt.Sprintf("%s/%d", c.basePath, id),
	}
	templ.Handler(titles.Edit(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *TitleController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		http.Error(w, "Error parsing id", http.StatusBadRequest)
		return
	}
	dto, err := composables.UseForm(&title.UpdateDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if errorsMap, ok := dto.Ok(r.Context()); !ok {
		c.renderEditForm(w, r, id, dto.Name, errorsMap)
		return
	}

	if err := c.titleService.Update(r.Context(), id, dto); err != nil {
		switch {
		case errors.Is(err, title.ErrNotFound):
			http.Error(w, c.errorMessage(r.Context(), err), http.StatusNotFound)
		case errors.Is(err, title.ErrNameTaken):
			c.renderEditForm(w, r, id, dto.Name, map[string]string{
				"Name": c.errorMessage(r.Context(), err),
			})
		default:
			composables.UseLogger(r.Context()).WithError(err).Error("failed to update title")
			http.Error(w, c.errorMessage(r.Context(), err), http.StatusInternalServerError)
		}
		return
	}

	c.flash(w, r, "success", "Titles.Flash.Updated", nil)
	shared.Redirect(w, r, c.basePath)
}

func (c *TitleController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(r)
	if err != nil {
		http.Error(w, "Error parsing id", http.StatusBadRequest)
		return
	}
	if _, err := c.titleService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, title.ErrNotFound) || errors.Is(err, title.ErrInUse) {
			c.flashRaw(w, "error", c.errorMessage(r.Context(), err))
			shared.Redirect(w, r, c.basePath)
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("failed to delete title")
		http.Error(w, c.errorMessage(r.Context(), err), http.StatusInternalServerError)
		return
	}
	c.flash(w, r, "success", "Titles.Flash.Deleted", nil)
	shared.Redirect(w, r, c.basePath)
}

// BulkDelete removes every title named in the repeated "ids" form field.
// Malformed ids reject the whole request before anything is deleted.
func (c *TitleController) BulkDelete(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rawIDs := r.Form["ids"]
	if len(rawIDs) == 0 {
		shared.Redirect(w, r, c.basePath)
		return
	}
	ids := make([]uint, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid id %q", raw), http.StatusBadRequest)
			return
		}
		ids = append(ids, uint(id))
	}

	deleted, err := c.titleService.DeleteMany(r.Context(), ids)
	if err != nil {
		if errors.Is(err, title.ErrNotFound) || errors.Is(err, title.ErrInUse) {
			c.flashRaw(w, "error", c.errorMessage(r.Context(), err))
			shared.Redirect(w, r, c.basePath)
			return
		}
		composables.UseLogger(r.Context()).WithError(err).Error("failed to bulk delete titles")
		http.Error(w, c.errorMessage(r.Context(), err), http.StatusInternalServerError)
		return
	}

	c.flash(w, r, "success", "Titles.Flash.BulkDeleted", map[string]interface{}{
		"Count": deleted,
	})
	shared.Redirect(w, r, c.basePath)
}

func (c *TitleController) renderCreateForm(w http.ResponseWriter, r *http.Request, name string, errorsMap map[string]string) {
	if htmx.IsHxRequest(r) {
		htmx.Retarget(w, "#title-form")
	}
	props := &titles.CreatePageProps{
		Errors:   errorsMap,
		Title:    &viewmodels.Title{Name: name},
		PostPath: c.basePath,
	}
	templ.Handler(titles.CreateForm(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *TitleController) renderEditForm(w http.ResponseWriter, r *http.Request, id uint, name string, errorsMap map[string]string) {
	if htmx.IsHxRequest(r) {
		htmx.Retarget(w, "#title-form")
	}
	props := &titles.EditPageProps{
		Title:     &viewmodels.Title{ID: strconv.FormatUint(uint64(id), 10), Name: name},
		Errors:    errorsMap,
		SaveURL:   fmt.Sprintf("%s/%d", c.basePath, id),
		DeleteURL: fmt.Sprintf("%s/%d", c.basePath, id),
	}
	templ.Handler(titles.EditForm(props), templ.WithStreaming()).ServeHTTP(w, r)
}

func (c *TitleController) flash(w http.ResponseWriter, r *http.Request, variant, messageID string, data map[string]interface{}) {
	pageCtx, ok := composables.TryUsePageCtx(r.Context())
	if !ok {
		return
	}
	msg := pageCtx.TSafe(messageID, data)
	if msg == "" {
		msg = messageID
	}
	composables.SetFlashMessage(w, variant, msg)
}

func (c *TitleController) flashRaw(w http.ResponseWriter, variant, message string) {
	composables.SetFlashMessage(w, variant, message)
}

// errorMessage resolves a domain error through the static lookup table,
// defaulting to the raw error text for unmapped errors.
func (c *TitleController) errorMessage(ctx context.Context, err error) string {
	if l, ok := intl.UseLocalizer(ctx); ok {
		for domainErr, key := range errorLocaleKeys {
			if errors.Is(err, domainErr) {
				if msg, lerr := l.Localize(&i18n.LocalizeConfig{MessageID: key}); lerr == nil {
					return msg
				}
			}
		}
	}
	return err.Error()
}
