// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/coachly/testutil"
)

func TestPageHandler(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "login.html"), []byte("<h1>Login</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testutil.GetTestConfig()
	cfg.FrontendDir = dir
	handler := NewPageHandler(cfg)

	t.Run("existing page", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Page("login.html")(w, httptest.NewRequest("GET", "/login", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Body.String(), "Login") {
			t.Errorf("Expected page content, got %q", w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("Expected text/html, got %q", ct)
		}
	})

	t.Run("missing page", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Page("dashboard.html")(w, httptest.NewRequest("GET", "/dashboard", nil))
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("static asset", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Static().ServeHTTP(w, httptest.NewRequest("GET", "/static/app.css", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if w.Body.String() != "body{}" {
			t.Errorf("Unexpected asset body %q", w.Body.String())
		}
	})
}
