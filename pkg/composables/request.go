package composables

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/altora/backoffice/pkg/constants"
	"github.com/altora/backoffice/pkg/types"
)

var (
	ErrNoLogger = errors.New("logger not found")
)

type Params struct {
	IP            string
	UserAgent     string
	Authenticated bool
	Request       *http.Request
	Writer        http.ResponseWriter
}

// UseParams returns the request parameters from the context.
// If the parameters are not found, the second return value will be false.
func UseParams(ctx context.Context) (*Params, bool) {
	params, ok := ctx.Value(constants.ParamsKey).(*Params)
	return params, ok
}

// WithParams returns a new context with the request parameters.
func WithParams(ctx context.Context, params *Params) context.Context {
	return context.WithValue(ctx, constants.ParamsKey, params)
}

// UseLogger returns the request-scoped logger entry from the context.
// Panics when the logging middleware did not run.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		panic(ErrNoLogger)
	}
	return logger.(*logrus.Entry)
}

func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UsePageCtx returns the page context. Panics when the page context
// middleware did not run.
func UsePageCtx(ctx context.Context) *types.PageContext {
	if pageCtx, ok := TryUsePageCtx(ctx); ok {
		return pageCtx
	}
	panic("page context not found")
}

// TryUsePageCtx attempts to fetch the page context without panicking.
func TryUsePageCtx(ctx context.Context) (*types.PageContext, bool) {
	pageCtx, ok := ctx.Value(constants.PageContext).(*types.PageContext)
	return pageCtx, ok
}

func WithPageCtx(ctx context.Context, pageCtx *types.PageContext) context.Context {
	return context.WithValue(ctx, constants.PageContext, pageCtx)
}

// UseFlash reads and clears a flash cookie. A missing cookie falls back to
// the query string so redirects can carry flashes across hosts.
func UseFlash(w http.ResponseWriter, r *http.Request, name string) ([]byte, error) {
	c, err := r.Cookie(name)
	if err != nil {
		switch {
		case errors.Is(err, http.ErrNoCookie):
			queryValue := r.URL.Query().Get(name)
			if queryValue != "" {
				return []byte(queryValue), nil
			}
			return nil, nil
		default:
			return nil, err
		}
	}
	val, err := base64.URLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil, err
	}
	dc := &http.Cookie{Name: name, MaxAge: -1, Expires: time.Unix(1, 0), Path: "/"}
	http.SetCookie(w, dc)
	return val, nil
}

// SetFlash stores a one-shot value in a cookie consumed by UseFlash.
func SetFlash(w http.ResponseWriter, name string, value []byte) {
	http.SetCookie(w, &http.Cookie{
		Name:  name,
		Value: base64.URLEncoding.EncodeToString(value),
		Path:  "/",
	})
}

// FlashMessage is the shape flashed by controllers after mutations.
type FlashMessage struct {
	Variant string `json:"variant"`
	Message string `json:"message"`
}

func SetFlashMessage(w http.ResponseWriter, variant, message string) {
	b, err := json.Marshal(&FlashMessage{Variant: variant, Message: message})
	if err != nil {
		return
	}
	SetFlash(w, "flash", b)
}

// UseFlashMessage reads and clears the flash message set by SetFlashMessage.
func UseFlashMessage(w http.ResponseWriter, r *http.Request) (*FlashMessage, error) {
	b, err := UseFlash(w, r, "flash")
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	var msg FlashMessage
	if err := json.Unmarshal(b, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
