// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/coachly/auth"
	"github.com/danielhkuo/coachly/cliparse"
	"github.com/danielhkuo/coachly/completion"
	"github.com/danielhkuo/coachly/middleware"
	"github.com/danielhkuo/coachly/models"
)

type AIHandler struct {
	db        *sqlx.DB
	cfg       cliparse.Config
	sessions  *auth.Sessions
	completer completion.Completer
}

// NewAIHandler creates the AI proxy handler. completer may be nil when no
// API key is configured; requests then fail with 500.
func NewAIHandler(db *sqlx.DB, cfg cliparse.Config, completer completion.Completer) *AIHandler {
	return &AIHandler{
		db:        db,
		cfg:       cfg,
		sessions:  auth.NewSessions(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies),
		completer: completer,
	}
}

// AIResponse handles POST /api/ai-response
func (h *AIHandler) AIResponse(w http.ResponseWriter, r *http.Request) {
	var req models.AIRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	if h.cfg.OpenAIAPIKey == "" || h.completer == nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, completion.ErrMissingAPIKey.Error())
		return
	}

	reply, err := h.completer.Complete(r.Context(), req.Text)
	if errors.Is(err, completion.ErrTimeout) {
		slog.Error("completion timed out", "error", err)
		middleware.ErrorResponse(w, http.StatusGatewayTimeout, err.Error())
		return
	}
	if err != nil {
		slog.Error("completion failed", "error", err)
		message := "Completion service error"
		if h.cfg.ExposeUpstreamErrors {
			message = err.Error()
		}
		middleware.ErrorResponse(w, http.StatusInternalServerError, message)
		return
	}

	userID := strings.TrimSpace(string(req.UserID))
	if userID == "" {
		userID, _ = actingUser(r, h.sessions, "", false)
	}
	if userID != "" {
		// The reply is returned even if it cannot be recorded
		if err := h.recordQuery(context.WithoutCancel(r.Context()), userID, req.Text, reply); err != nil {
			slog.Error("failed to record ai query", "user_id", userID, "error", err)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.AIResponse{Response: reply})
}

func (h *AIHandler) recordQuery(ctx context.Context, userID, text, reply string) error {
	q := models.AIQuery{
		ID:        uuid.NewString(),
		UserID:    &userID,
		Query:     text,
		Response:  reply,
		CreatedAt: time.Now().UTC(),
	}

	_, err := h.db.ExecContext(ctx, `
		INSERT INTO ai_queries (id, user_id, query, response, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, q.ID, q.UserID, q.Query, q.Response, q.CreatedAt)
	return err
}
