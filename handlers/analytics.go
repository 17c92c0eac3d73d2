// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/coachly/cliparse"
	"github.com/danielhkuo/coachly/middleware"
	"github.com/danielhkuo/coachly/models"
)

type AnalyticsHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewAnalyticsHandler(db *sqlx.DB, cfg cliparse.Config) *AnalyticsHandler {
	return &AnalyticsHandler{db: db, cfg: cfg, now: time.Now}
}

// localDay returns the UTC bounds [start, end) of the server-local calendar
// day containing t. Stored timestamps are UTC.
func localDay(t time.Time) (start, end time.Time) {
	local := t.In(time.Local)
	y, m, d := local.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return midnight.UTC(), midnight.AddDate(0, 0, 1).UTC()
}

// AnalyticsData handles GET /api/analytics-data
func (h *AnalyticsHandler) AnalyticsData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var resp models.AnalyticsResponse

	if err := h.db.GetContext(ctx, &resp.TotalUsers, `SELECT COUNT(*) FROM users`); err != nil {
		slog.Error("failed to count users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	start, end := localDay(h.now())
	err := h.db.GetContext(ctx, &resp.QueriesToday, `
		SELECT COUNT(*) FROM ai_queries
		WHERE created_at >= $1 AND created_at < $2
	`, start, end)
	if err != nil {
		slog.Error("failed to count today's queries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.db.GetContext(ctx, &resp.TotalQueries, `SELECT COUNT(*) FROM ai_queries`); err != nil {
		slog.Error("failed to count queries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
