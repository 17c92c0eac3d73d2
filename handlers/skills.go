// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/coachly/auth"
	"github.com/danielhkuo/coachly/cliparse"
	"github.com/danielhkuo/coachly/middleware"
	"github.com/danielhkuo/coachly/models"
)

type SkillHandler struct {
	db       *sqlx.DB
	cfg      cliparse.Config
	sessions *auth.Sessions
}

func NewSkillHandler(db *sqlx.DB, cfg cliparse.Config) *SkillHandler {
	return &SkillHandler{
		db:       db,
		cfg:      cfg,
		sessions: auth.NewSessions(cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies),
	}
}

// AddSkill handles POST /api/add-skill
// percent is not range-checked and duplicate names are allowed. The form
// user_id is used only without a session and when AllowLegacyUserParam is set.
func (h *SkillHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	userID, _ := actingUser(r, h.sessions, r.PostFormValue("user_id"), h.cfg.AllowLegacyUserParam)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	percent, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("percent")))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "percent must be an integer")
		return
	}

	skill := models.Skill{
		ID:      uuid.NewString(),
		UserID:  userID,
		Name:    name,
		Percent: percent,
		Color:   models.DefaultSkillColor,
		Note:    r.PostFormValue("note"),
	}

	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO skills (id, user_id, name, percent, color, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, skill.ID, skill.UserID, skill.Name, skill.Percent, skill.Color, skill.Note, time.Now().UTC())

	if err != nil {
		slog.Error("failed to insert skill", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add skill")
		return
	}

	slog.Info("skill added", "user_id", userID, "skill_id", skill.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AddSkillResponse{
		Status:  "success",
		SkillID: skill.ID,
	})
}
