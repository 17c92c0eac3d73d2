// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielhkuo/coachly/cliparse"
)

// PageHandler serves the frontend's page and asset files.
// Pages are plain files; nothing is templated.
type PageHandler struct {
	dir string
}

func NewPageHandler(cfg cliparse.Config) *PageHandler {
	return &PageHandler{dir: cfg.FrontendDir}
}

// Page returns a handler serving <dir>/<file>, or 404 if it is missing
func (h *PageHandler) Page(file string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(h.dir, file)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}
}

// Static serves the frontend directory under /static/
func (h *PageHandler) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir(h.dir)))
}
