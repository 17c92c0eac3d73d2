// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are resolved in three layers: an optional .env file (LoadDotEnv),
the process environment, then CLI flags. CLI flags take precedence.

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DBPath: SQLite file (default: database.db)
  - DatabaseURL: PostgreSQL connection string (postgres only)
  - SessionSecret: Secret for session token signing (required)
  - SessionTTL: Session cookie lifetime (default: 168h)
  - OpenAIAPIKey: Completion service credential (env only)
  - ChatModel: Completion model (default: gpt-4o-mini)
  - AITimeout: Per-call completion timeout (default: 30s)

# CLI Flags

	-p               Server port
	-t               Database type
	-d               Database URL
	-db-path         SQLite file
	-frontend        Page and static file directory
	-log-level       Log level
	-session-secret  Session signing secret

# Environment Variables

	PORT, DATABASE_TYPE, DATABASE_URL, DB_PATH, SESSION_SECRET, SESSION_TTL,
	SECURE_COOKIES, ALLOW_LEGACY_USER_PARAM, OPENAI_API_KEY, OPENAI_BASE_URL,
	OPENAI_MODEL, AI_TIMEOUT, EXPOSE_UPSTREAM_ERRORS, FRONTEND_DIR,
	LOG_LEVEL, LOG_FORMAT

# Validation

ParseFlags returns an error if:

  - SESSION_SECRET is missing
  - DATABASE_TYPE is not sqlite or postgres
  - DATABASE_URL is missing for postgres
  - the port or AI timeout is out of range
*/
package cliparse
