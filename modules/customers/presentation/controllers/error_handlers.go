package controllers

import (
	"net/http"

	"github.com/altora/backoffice/pkg/application"
)

func NotFound(app application.Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.Logger().WithField("path", r.URL.Path).Debug("page not found")
		http.Error(w, "page not found", http.StatusNotFound)
	})
}

func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	})
}
