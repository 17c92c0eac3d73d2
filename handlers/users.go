// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/coachly/auth"
	"github.com/danielhkuo/coachly/cliparse"
	"github.com/danielhkuo/coachly/db"
	"github.com/danielhkuo/coachly/middleware"
	"github.com/danielhkuo/coachly/models"
)

type UserHandler struct {
	db       *sqlx.DB
	cfg      cliparse.Config
	sessions *auth.Sessions
	stats    ProfileStatsProvider
}

func NewUserHandler(db *sqlx.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{
		db:       db,
		cfg:      cfg,
		sessions: auth.NewSessions(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies),
		stats:    PlaceholderStats{},
	}
}

// Register handles POST /api/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if name == "" || email == "" || password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	userID := uuid.NewString()
	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, name, email, hash, time.Now().UTC())

	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, "Email already exists")
		return
	}
	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("user registered", "user_id", userID)

	http.Redirect(w, r, "/question-after-register", http.StatusSeeOther)
}

// Login handles POST /api/login
// Wrong password and unknown email produce the same response.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if email == "" || password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	var user models.User
	err := h.db.GetContext(r.Context(), &user, `
		SELECT id, password_hash FROM users WHERE email = $1
	`, email)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = auth.RejectPassword(password)
	case err != nil:
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	default:
		err = auth.CheckPassword(user.PasswordHash, password)
	}

	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.sessions.SetCookie(w, user.ID); err != nil {
		slog.Error("failed to issue session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout handles POST /api/logout
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// GetUserInfo handles GET /api/user-info
// The session cookie identifies the user. The user_id query parameter is a
// deprecated fallback honored only when AllowLegacyUserParam is set.
func (h *UserHandler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	userID, legacy := actingUser(r, h.sessions, r.URL.Query().Get("user_id"), h.cfg.AllowLegacyUserParam)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	if legacy {
		w.Header().Set("Deprecation", "true")
		slog.Warn("deprecated user_id parameter used", "user_id", userID)
	}

	var user models.User
	err := h.db.GetContext(r.Context(), &user, `
		SELECT id, name, email FROM users WHERE id = $1
	`, userID)

	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	skills := []models.Skill{}
	err = h.db.SelectContext(r.Context(), &skills, `
		SELECT id, user_id, name, percent, color, note
		FROM skills
		WHERE user_id = $1
		ORDER BY created_at, id
	`, user.ID)

	if err != nil {
		slog.Error("failed to query skills", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if skills == nil {
		skills = []models.Skill{}
	}

	stats, err := h.stats.StatsFor(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to compute profile stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserInfoResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		ProfileStats: stats,
		Skills:       skills,
	})
}
