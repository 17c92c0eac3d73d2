// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/coachly/auth"
	"github.com/danielhkuo/coachly/cliparse"
	"github.com/danielhkuo/coachly/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// Hashing at full cost makes handler tests needlessly slow
	auth.HashCost = bcrypt.MinCost

	ctx := context.Background()
	cfg := cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DBPath:       filepath.Join(t.TempDir(), "test.db"),
	}

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn.DB, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                 8000,
		DatabaseType:         cliparse.DatabaseSQLite,
		SessionSecret:        "test-session-secret",
		SessionTTL:           time.Hour,
		AllowLegacyUserParam: true,
		OpenAIAPIKey:         "test-key",
		ChatModel:            "gpt-4o-mini",
		AITimeout:            5 * time.Second,
		ExposeUpstreamErrors: true,
	}
}

// CreateTestUser inserts a user with a bcrypt-hashed password and returns its ID
func CreateTestUser(t *testing.T, conn *sqlx.DB, name, email, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	userID := uuid.NewString()
	_, err = conn.Exec(`
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, name, email, hash, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// AddTestSkill inserts a skill for a user and returns its ID
func AddTestSkill(t *testing.T, conn *sqlx.DB, userID, name string, percent int) string {
	t.Helper()

	skillID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO skills (id, user_id, name, percent, color, note, created_at)
		VALUES ($1, $2, $3, $4, 'primary', '', $5)
	`, skillID, userID, name, percent, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test skill: %v", err)
	}

	return skillID
}

// AddTestQuery inserts an AI query row stamped at the given time.
// An empty userID stores NULL.
func AddTestQuery(t *testing.T, conn *sqlx.DB, userID string, at time.Time) {
	t.Helper()

	var uid *string
	if userID != "" {
		uid = &userID
	}

	_, err := conn.Exec(`
		INSERT INTO ai_queries (id, user_id, query, response, created_at)
		VALUES ($1, $2, 'question', 'answer', $3)
	`, uuid.NewString(), uid, at.UTC())
	if err != nil {
		t.Fatalf("Failed to create test query: %v", err)
	}
}

// SessionCookie returns a valid session cookie for the user
func SessionCookie(t *testing.T, cfg cliparse.Config, userID string) *http.Cookie {
	t.Helper()

	token, err := auth.NewSessions(cfg.SessionSecret, cfg.SessionTTL, false).Issue(userID)
	if err != nil {
		t.Fatalf("Failed to issue session: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

// FakeCompleter is an in-memory completion.Completer
type FakeCompleter struct {
	mu       sync.Mutex
	Reply    string
	Err      error
	Calls    int
	LastText string
}

func (f *FakeCompleter) Complete(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.LastText = text
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates an HTTP test request with a url-encoded form body
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sqlx.DB, table string) int {
	t.Helper()
	var n int
	if err := conn.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
