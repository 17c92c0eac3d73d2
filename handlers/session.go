// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/coachly/auth"
)

// actingUser resolves the user a request acts for. A valid session cookie
// always wins; otherwise fallback (a request-supplied id) is used when
// allowFallback is set. fromFallback reports which source was used.
func actingUser(r *http.Request, sessions *auth.Sessions, fallback string, allowFallback bool) (userID string, fromFallback bool) {
	userID, err := sessions.UserID(r)
	if err == nil {
		return userID, false
	}
	if !errors.Is(err, auth.ErrNoSession) {
		slog.Warn("rejected session cookie", "path", r.URL.Path, "error", err)
	}

	fallback = strings.TrimSpace(fallback)
	if allowFallback && fallback != "" {
		return fallback, true
	}
	return "", false
}
