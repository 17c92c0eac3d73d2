// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/coachly/completion"
	"github.com/danielhkuo/coachly/models"
	"github.com/danielhkuo/coachly/testutil"
)

func TestAIResponse_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	aliceID := testutil.CreateTestUser(t, db, "Alice", "a@x.com", "pw123456")

	fake := &testutil.FakeCompleter{Reply: "Keep your head still."}
	handler := NewAIHandler(db, cfg, fake)

	body := models.AIRequest{Text: "How do I putt better?", UserID: models.UserRef(aliceID)}
	w := httptest.NewRecorder()
	handler.AIResponse(w, testutil.MakeRequest("POST", "/api/ai-response", body, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AIResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Response != "Keep your head still." {
		t.Errorf("Expected completion reply, got %q", resp.Response)
	}
	if fake.Calls != 1 || fake.LastText != "How do I putt better?" {
		t.Errorf("Expected one call with the question, got %d calls, text %q", fake.Calls, fake.LastText)
	}

	var q models.AIQuery
	if err := db.Get(&q, "SELECT id, user_id, query, response FROM ai_queries"); err != nil {
		t.Fatalf("Expected one recorded query: %v", err)
	}
	if q.UserID == nil || *q.UserID != aliceID {
		t.Errorf("Expected query attributed to %q, got %v", aliceID, q.UserID)
	}
	if q.Query != body.Text || q.Response != resp.Response {
		t.Errorf("Unexpected recorded query: %+v", q)
	}
}

func TestAIResponse_Recording(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	aliceID := testutil.CreateTestUser(t, db, "Alice", "a@x.com", "pw123456")

	handler := NewAIHandler(db, cfg, &testutil.FakeCompleter{Reply: "ok"})

	t.Run("anonymous request is not recorded", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.AIResponse(w, testutil.MakeRequest("POST", "/api/ai-response", models.AIRequest{Text: "hi"}, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if got := testutil.CountRows(t, db, "ai_queries"); got != 0 {
			t.Errorf("Expected 0 recorded queries, got %d", got)
		}
	})

	t.Run("session user is recorded", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/ai-response", models.AIRequest{Text: "hi"}, nil)
		req.AddCookie(testutil.SessionCookie(t, cfg, aliceID))
		w := httptest.NewRecorder()

		handler.AIResponse(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		if got := testutil.CountRows(t, db, "ai_queries"); got != 1 {
			t.Errorf("Expected 1 recorded query, got %d", got)
		}
	})
}

func TestAIResponse_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fake := &testutil.FakeCompleter{Reply: "ok"}
	handler := NewAIHandler(db, testutil.GetTestConfig(), fake)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: "{not json"},
		{name: "missing text", body: `{"user_id":"u1"}`},
		{name: "blank text", body: `{"text":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/ai-response", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.AIResponse(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	if fake.Calls != 0 {
		t.Errorf("Completion service called %d times for invalid requests", fake.Calls)
	}
}

func TestAIResponse_MissingAPIKey(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.OpenAIAPIKey = ""

	fake := &testutil.FakeCompleter{Reply: "ok"}
	handler := NewAIHandler(db, cfg, fake)

	w := httptest.NewRecorder()
	handler.AIResponse(w, testutil.MakeRequest("POST", "/api/ai-response", models.AIRequest{Text: "hi"}, nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "OPENAI_API_KEY not set" {
		t.Errorf("Expected missing key message, got %q", resp.Message)
	}
	if fake.Calls != 0 {
		t.Errorf("Completion service must not be called, got %d calls", fake.Calls)
	}

	t.Run("nil completer", func(t *testing.T) {
		h := NewAIHandler(db, testutil.GetTestConfig(), nil)
		w := httptest.NewRecorder()
		h.AIResponse(w, testutil.MakeRequest("POST", "/api/ai-response", models.AIRequest{Text: "hi"}, nil))
		testutil.AssertStatus(t, w, http.StatusInternalServerError)
	})
}

func TestAIResponse_UpstreamFailures(t *testing.T) {
	db := testutil.SetupTestDB(t)

	tests := []struct {
		name            string
		err             error
		expose          bool
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "timeout",
			err:             fmt.Errorf("%w after 5s", completion.ErrTimeout),
			expose:          true,
			expectedStatus:  http.StatusGatewayTimeout,
			expectedMessage: "completion service timed out after 5s",
		},
		{
			name:            "error exposed",
			err:             errors.New("invalid api key"),
			expose:          true,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "invalid api key",
		},
		{
			name:            "error scrubbed",
			err:             errors.New("invalid api key"),
			expose:          false,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Completion service error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testutil.GetTestConfig()
			cfg.ExposeUpstreamErrors = tt.expose
			handler := NewAIHandler(db, cfg, &testutil.FakeCompleter{Err: tt.err})

			w := httptest.NewRecorder()
			handler.AIResponse(w, testutil.MakeRequest("POST", "/api/ai-response", models.AIRequest{Text: "hi", UserID: "u1"}, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Message != tt.expectedMessage {
				t.Errorf("Expected message %q, got %q", tt.expectedMessage, resp.Message)
			}
		})
	}

	if got := testutil.CountRows(t, db, "ai_queries"); got != 0 {
		t.Errorf("Failed completions must not be recorded, got %d rows", got)
	}
}

func TestAIResponse_RecordingFailureStillReplies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	if _, err := db.Exec("DROP TABLE ai_queries"); err != nil {
		t.Fatalf("Failed to drop table: %v", err)
	}

	handler := NewAIHandler(db, testutil.GetTestConfig(), &testutil.FakeCompleter{Reply: "still here"})

	w := httptest.NewRecorder()
	handler.AIResponse(w, testutil.MakeRequest("POST", "/api/ai-response", models.AIRequest{Text: "hi", UserID: "u1"}, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AIResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Response != "still here" {
		t.Errorf("Expected reply despite recording failure, got %q", resp.Response)
	}
}

func TestAIResponse_UserIDForms(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedUser   string
	}{
		{name: "numeric id", body: `{"text":"hi","user_id":1}`, expectedStatus: http.StatusOK, expectedUser: "1"},
		{name: "string id", body: `{"text":"hi","user_id":"u-42"}`, expectedStatus: http.StatusOK, expectedUser: "u-42"},
		{name: "null id", body: `{"text":"hi","user_id":null}`, expectedStatus: http.StatusOK},
		{name: "boolean id", body: `{"text":"hi","user_id":true}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			fake := &testutil.FakeCompleter{Reply: "ok"}
			handler := NewAIHandler(db, testutil.GetTestConfig(), fake)

			req := httptest.NewRequest("POST", "/api/ai-response", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.AIResponse(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				if fake.Calls != 0 {
					t.Errorf("Completion service called for rejected request")
				}
				return
			}

			if fake.Calls != 1 {
				t.Errorf("Expected one completion call, got %d", fake.Calls)
			}

			var users []string
			if err := db.Select(&users, "SELECT user_id FROM ai_queries"); err != nil {
				t.Fatalf("Failed to load recorded queries: %v", err)
			}
			if tt.expectedUser == "" {
				if len(users) != 0 {
					t.Errorf("Expected no recorded query, got %v", users)
				}
				return
			}
			if len(users) != 1 || users[0] != tt.expectedUser {
				t.Errorf("Expected one query for %q, got %v", tt.expectedUser, users)
			}
		})
	}
}
