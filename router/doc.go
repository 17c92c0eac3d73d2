// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Coachly server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, completer)

completer may be nil; the AI endpoint then answers 500.

# Endpoints

Health:

	GET /health - 200 OK, or 503 when the database cannot be pinged

Accounts (form-encoded):

	POST /api/register  - Create account, redirect to /question-after-register
	POST /api/login     - Set session cookie, redirect to /dashboard
	POST /api/logout    - Clear session cookie, redirect to /login
	GET  /api/user-info - Profile and skills for the session user

Coaching:

	POST /api/add-skill      - Add a skill (form-encoded)
	POST /api/ai-response    - Ask the AI coach (JSON)
	GET  /api/analytics-data - User and query counts

Pages are served from the frontend directory:

	GET /, /login, /dashboard, /ai, /analytics, /edit-profile,
	    /question-after-register, /log-out
	GET /static/...
*/
package router
