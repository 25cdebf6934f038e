package shared

import (
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"

	"github.com/altora/backoffice/pkg/htmx"
)

// ParseID extracts the numeric {id} route variable.
func ParseID(r *http.Request) (uint, error) {
	v, ok := mux.Vars(r)["id"]
	if !ok {
		return 0, errors.New("id not found in request path")
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", v)
	}
	return uint(id), nil
}

// Redirect sends the browser to path, using an Hx-Redirect header for htmx
// requests so the client swaps the whole page instead of the fragment.
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	if htmx.IsHxRequest(r) {
		htmx.Redirect(w, path)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, path, http.StatusFound)
}
