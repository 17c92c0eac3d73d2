// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/coachly/cliparse"
	"github.com/danielhkuo/coachly/completion"
	"github.com/danielhkuo/coachly/handlers"
	"github.com/danielhkuo/coachly/middleware"
)

// pages maps page routes to files in the frontend directory
var pages = map[string]string{
	"GET /{$}":                     "index.html",
	"GET /login":                   "login.html",
	"GET /dashboard":               "dashboard.html",
	"GET /ai":                      "ai.html",
	"GET /analytics":               "analytics.html",
	"GET /edit-profile":            "edit-profile.html",
	"GET /question-after-register": "question-after-register.html",
	"GET /log-out":                 "log-out.html",
}

// NewRouter wires every route. completer may be nil when no completion
// service is configured.
func NewRouter(db *sqlx.DB, cfg cliparse.Config, completer completion.Completer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	skillHandler := handlers.NewSkillHandler(db, cfg)
	aiHandler := handlers.NewAIHandler(db, cfg, completer)
	analyticsHandler := handlers.NewAnalyticsHandler(db, cfg)
	pageHandler := handlers.NewPageHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("UNAVAILABLE"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /api/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(userHandler.Login))
	mux.HandleFunc("POST /api/logout", middleware.WithLogging(userHandler.Logout))
	mux.HandleFunc("GET /api/user-info", middleware.WithLogging(userHandler.GetUserInfo))

	// Skills
	mux.HandleFunc("POST /api/add-skill", middleware.WithLogging(skillHandler.AddSkill))

	// AI coach
	mux.HandleFunc("POST /api/ai-response", middleware.WithLogging(aiHandler.AIResponse))

	// Analytics
	mux.HandleFunc("GET /api/analytics-data", middleware.WithLogging(analyticsHandler.AnalyticsData))

	// Frontend
	for pattern, file := range pages {
		mux.HandleFunc(pattern, pageHandler.Page(file))
	}
	mux.Handle("GET /static/", pageHandler.Static())

	return mux
}
