// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

// SetupTestDB creates a fresh SQLite database with the full schema in the
// test's temp directory. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(cliparse.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		JWTSecret:    "test-jwt-secret",
		TokenTTL:     time.Hour,
		QueryTimeout: 5 * time.Second,
	}
}

// CreateTestPoll inserts a poll with the given options and returns it.
// A nil expiresAt creates a poll that never expires.
func CreateTestPoll(t *testing.T, conn *sql.DB, createdBy models.UserID, expiresAt *time.Time, options ...string) models.Poll {
	t.Helper()

	if len(options) == 0 {
		options = []string{"Option A", "Option B"}
	}

	poll, err := store.New(conn, 0).CreatePoll(context.Background(), "Test Poll", options, createdBy, time.Now(), expiresAt)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return poll
}

// CastTestVote records a vote directly in the store and returns its ID
func CastTestVote(t *testing.T, conn *sql.DB, pollID, optionID string, userID models.UserID) string {
	t.Helper()

	vote, err := store.New(conn, 0).RecordVote(context.Background(), pollID, optionID, userID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return vote.ID
}

// CountVotes returns the number of vote rows for a poll, optionally
// restricted to one user (userID 0 counts all).
func CountVotes(t *testing.T, conn *sql.DB, pollID string, userID models.UserID) int {
	t.Helper()

	var count int
	var err error
	if userID == 0 {
		err = conn.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1", pollID).Scan(&count)
	} else {
		err = conn.QueryRow("SELECT COUNT(*) FROM vote WHERE poll_id = $1 AND user_id = $2", pollID, int64(userID)).Scan(&count)
	}
	if err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}

	return count
}

// AuthHeader returns an Authorization header carrying a token for userID
func AuthHeader(t *testing.T, cfg cliparse.Config, userID models.UserID) map[string]string {
	t.Helper()

	token, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL).Issue(models.User{ID: userID})
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
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
