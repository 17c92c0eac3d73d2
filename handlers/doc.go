// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Coachly server.

# Handler Types

Each handler is a struct with database and config dependencies:

  - UserHandler: Registration, login, logout and the profile view
  - SkillHandler: Adding skills to a profile
  - AIHandler: Proxying questions to the completion service
  - AnalyticsHandler: Aggregate user and query counts
  - PageHandler: Serving frontend page and asset files

Handlers are created via constructor functions that accept *sqlx.DB and Config:

	userHandler := handlers.NewUserHandler(db, cfg)

# Identifying the User

A signed session cookie set at login identifies the user. Endpoints that
historically took a user_id parameter still accept it: user-info honors
the query parameter only when AllowLegacyUserParam is set and marks the
response with a Deprecation header, and add-skill uses the form field under
the same setting when no session is present.

# Account Flow

	POST /api/register → Register (303 to /question-after-register)
	POST /api/login    → Login (303 to /dashboard, sets session cookie)
	POST /api/logout   → Logout (303 to /login)
	GET /api/user-info → GetUserInfo

Wrong password and unknown email produce the same 401 response.

# AI Coach

AIResponse sends one user message to the configured Completer. Answered
questions are recorded in ai_queries when a user can be attributed; a
failed write is logged and the reply is still returned.

# Analytics

AnalyticsData counts users, all AI queries, and the AI queries made during
the server's current local calendar day.
*/
package handlers
