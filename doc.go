// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Coachly server.

Coachly is a small personal-coaching web app. Users register, log in,
track skills with a progress percentage, ask an AI coach questions, and
view usage analytics.

# Starting the Server

Configuration comes from the environment (optionally a .env file) and
CLI flags, with flags taking precedence:

	SESSION_SECRET=... OPENAI_API_KEY=... go run .

Or with flags:

	go run . -p 8000 -db-path ./data/coachly.db -session-secret ...

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): Key for signing session cookies

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DB_PATH (-db-path): SQLite file (default: database.db)
  - DATABASE_URL (-d): PostgreSQL connection string
  - OPENAI_API_KEY: Completion service key; the AI coach is disabled without it
  - FRONTEND_DIR (-frontend): Directory holding the page files

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, skills, AI coach, analytics, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, JSON helpers
  - models: Request/response and row types
  - auth: Password hashing and signed session cookies
  - completion: OpenAI chat completion client
  - db: Connection setup and embedded migrations
  - logger: slog handler construction
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
