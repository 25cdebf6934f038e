package controllers

import (
	"net/http"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/altora/backoffice/pkg/application"
	"github.com/altora/backoffice/pkg/configuration"
	"github.com/altora/backoffice/pkg/multifs"
)

type StaticFilesController struct {
	fsInstances []*hashfs.FS
}

func (s *StaticFilesController) Key() string {
	return "/assets"
}

func (s *StaticFilesController) Register(r *mux.Router) {
	fsHandler := http.StripPrefix("/assets/", http.FileServer(http.FS(multifs.New(s.fsInstances...))))
	cacheControl := "public, max-age=3600"
	if configuration.Use().GoAppEnvironment != configuration.Production {
		cacheControl = "no-cache, no-store, must-revalidate"
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		fsHandler.ServeHTTP(w, r)
	})
	r.PathPrefix("/assets/").Handler(handler)
}

func NewStaticFilesController(fsInstances []*hashfs.FS) application.Controller {
	return &StaticFilesController{
		fsInstances: fsInstances,
	}
}
