package composables

import (
	"net/http"

	"github.com/go-faster/errors"

	"github.com/altora/backoffice/pkg/constants"
)

// UseForm parses the request body and decodes it into dto.
func UseForm[T any](dto T, r *http.Request) (T, error) {
	if err := r.ParseForm(); err != nil {
		return dto, errors.Wrap(err, "failed to parse form")
	}
	if err := constants.FormDecoder.Decode(dto, r.Form); err != nil {
		return dto, errors.Wrap(err, "failed to decode form")
	}
	return dto, nil
}

// UseQuery decodes query string parameters into dto.
func UseQuery[T any](dto T, r *http.Request) (T, error) {
	if err := constants.FormDecoder.Decode(dto, r.URL.Query()); err != nil {
		return dto, errors.Wrap(err, "failed to decode query")
	}
	return dto, nil
}
