package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"8000"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DBPath       string `env:"DB_PATH" envDefault:"database.db"`

	SessionSecret        string        `env:"SESSION_SECRET"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SecureCookies        bool          `env:"SECURE_COOKIES" envDefault:"false"`
	AllowLegacyUserParam bool          `env:"ALLOW_LEGACY_USER_PARAM" envDefault:"true"`

	// Completion service. The API key is never accepted on the command line.
	OpenAIAPIKey         string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL        string        `env:"OPENAI_BASE_URL"`
	ChatModel            string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	AITimeout            time.Duration `env:"AI_TIMEOUT" envDefault:"30s"`
	ExposeUpstreamErrors bool          `env:"EXPOSE_UPSTREAM_ERRORS" envDefault:"true"`

	FrontendDir string `env:"FRONTEND_DIR" envDefault:"frontend"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadDotEnv loads variables from the given .env file if it exists.
// Variables already present in the environment are left untouched.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags reads the environment, then applies CLI overrides and validates
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("coachly", flag.ContinueOnError)

	// Environment values become the flag defaults so the CLI wins
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL (postgres)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database file")
	fs.StringVar(&cfg.FrontendDir, "frontend", cfg.FrontendDir, "Directory with page and static files")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Session signing secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite:
		if cfg.DBPath == "" {
			return Config{}, errors.New("database path required (use -db-path or DB_PATH env)")
		}
	case DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.AITimeout <= 0 {
		return Config{}, errors.New("AI_TIMEOUT must be positive")
	}

	return cfg, nil
}
