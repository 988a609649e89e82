// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/polls"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/danielhkuo/quickly-vote/testutil"
)

type testEnv struct {
	db     *sql.DB
	cfg    cliparse.Config
	svc    *polls.Service
	issuer *auth.TokenIssuer
}

// setupTestEnv wires a poll service over a fresh SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	return &testEnv{
		db:     db,
		cfg:    cfg,
		svc:    polls.NewService(store.New(db, cfg.QueryTimeout)),
		issuer: auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
	}
}

// serve runs h behind RequireAuth as userID (0 sends no token)
func (e *testEnv) serve(t *testing.T, h http.HandlerFunc, req *http.Request, userID models.UserID) *httptest.ResponseRecorder {
	t.Helper()

	if userID != 0 {
		for k, v := range testutil.AuthHeader(t, e.cfg, userID) {
			req.Header.Set(k, v)
		}
	}
	w := httptest.NewRecorder()
	middleware.RequireAuth(e.issuer, h)(w, req)
	return w
}

func TestCreatePoll(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewPollHandler(env.svc)

	tests := []struct {
		name           string
		requestBody    interface{}
		userID         models.UserID
		expectedStatus int
		expectedMsg    string
		checkResponse  func(t *testing.T, resp *models.Poll)
	}{
		{
			name: "valid poll creation",
			requestBody: models.CreatePollRequest{
				Question: "  Best pizza topping?  ",
				Options:  []string{"Mushroom", " ", "Pepperoni ", "Pineapple"},
			},
			userID:         1,
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.Poll) {
				if resp.ID == "" {
					t.Error("Expected non-empty id")
				}
				if resp.Question != "Best pizza topping?" {
					t.Errorf("Expected trimmed question, got '%s'", resp.Question)
				}
				if resp.CreatedBy != 1 {
					t.Errorf("Expected created_by 1, got %d", resp.CreatedBy)
				}
				if len(resp.Options) != 3 {
					t.Fatalf("Expected 3 options, got %d", len(resp.Options))
				}
				if resp.Options[1].Text != "Pepperoni" {
					t.Errorf("Expected 'Pepperoni' second, got '%s'", resp.Options[1].Text)
				}

				var count int
				if err := env.db.QueryRow("SELECT COUNT(*) FROM option WHERE poll_id = $1", resp.ID).Scan(&count); err != nil {
					t.Fatalf("Failed to count options: %v", err)
				}
				if count != 3 {
					t.Errorf("Expected 3 option rows, got %d", count)
				}
			},
		},
		{
			name: "missing question",
			requestBody: models.CreatePollRequest{
				Options: []string{"A", "B"},
			},
			userID:         1,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "question is required",
		},
		{
			name: "blank question",
			requestBody: models.CreatePollRequest{
				Question: "   ",
				Options:  []string{"A", "B"},
			},
			userID:         1,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "question is required",
		},
		{
			name: "one real option",
			requestBody: models.CreatePollRequest{
				Question: "Q",
				Options:  []string{"A", "  "},
			},
			userID:         1,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "at least 2 non-empty options are required",
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			userID:         1,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid JSON",
		},
		{
			name: "no token",
			requestBody: models.CreatePollRequest{
				Question: "Q",
				Options:  []string{"A", "B"},
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "No token provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			var err error

			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			req := httptest.NewRequest("POST", "/api/polls", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			w := env.serve(t, handler.CreatePoll, req, tt.userID)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated && tt.checkResponse != nil {
				var resp models.Poll
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
				return
			}

			if tt.expectedMsg != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != tt.expectedMsg {
					t.Errorf("Expected message '%s', got '%s'", tt.expectedMsg, resp.Message)
				}
			}
		})
	}
}

func TestCreatePollWithPastExpiry(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewPollHandler(env.svc)

	past := time.Now().Add(-time.Hour).UTC()
	req := testutil.MakeRequest("POST", "/api/polls", models.CreatePollRequest{
		Question:  "Already over?",
		Options:   []string{"Yes", "No"},
		ExpiresAt: &past,
	}, nil)

	w := env.serve(t, handler.CreatePoll, req, 1)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.Poll
	testutil.AssertJSON(t, w, &created)

	req = httptest.NewRequest("GET", "/api/polls/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	w = env.serve(t, handler.GetPoll, req, 1)
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.PollView
	testutil.AssertJSON(t, w, &view)
	if !view.IsExpired {
		t.Error("Expected poll created with a past expiry to be expired")
	}
}

func TestGetPoll(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewPollHandler(env.svc)

	poll := testutil.CreateTestPoll(t, env.db, 1, nil, "Red", "Green", "Blue")
	testutil.CastTestVote(t, env.db, poll.ID, poll.Options[0].ID, 1)
	testutil.CastTestVote(t, env.db, poll.ID, poll.Options[0].ID, 2)
	testutil.CastTestVote(t, env.db, poll.ID, poll.Options[2].ID, 3)

	t.Run("voter sees tally", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/polls/"+poll.ID, nil)
		req.SetPathValue("id", poll.ID)
		w := env.serve(t, handler.GetPoll, req, 2)

		testutil.AssertStatus(t, w, http.StatusOK)

		var view models.PollView
		testutil.AssertJSON(t, w, &view)

		if view.TotalVotes != 3 {
			t.Errorf("Expected 3 total votes, got %d", view.TotalVotes)
		}
		if !view.HasVoted {
			t.Error("Expected has_voted for user 2")
		}
		if view.IsExpired {
			t.Error("Expected poll without expiry to be open")
		}

		expected := []struct {
			text       string
			votes      int
			percentage int
		}{
			{"Red", 2, 67},
			{"Green", 0, 0},
			{"Blue", 1, 33},
		}
		if len(view.Options) != len(expected) {
			t.Fatalf("Expected %d options, got %d", len(expected), len(view.Options))
		}
		for i, exp := range expected {
			got := view.Options[i]
			if got.Text != exp.text || got.Votes != exp.votes || got.Percentage != exp.percentage {
				t.Errorf("Option %d: expected %s %d/%d%%, got %s %d/%d%%",
					i, exp.text, exp.votes, exp.percentage, got.Text, got.Votes, got.Percentage)
			}
		}
	})

	t.Run("non-voter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/polls/"+poll.ID, nil)
		req.SetPathValue("id", poll.ID)
		w := env.serve(t, handler.GetPoll, req, 99)

		testutil.AssertStatus(t, w, http.StatusOK)

		var view models.PollView
		testutil.AssertJSON(t, w, &view)
		if view.HasVoted {
			t.Error("Expected has_voted false for user 99")
		}
	})

	t.Run("missing poll", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/polls/nope", nil)
		req.SetPathValue("id", "nope")
		w := env.serve(t, handler.GetPoll, req, 1)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestListPolls(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewPollHandler(env.svc)

	t.Run("empty list is an array", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/polls", nil)
		w := env.serve(t, handler.ListPolls, req, 1)

		testutil.AssertStatus(t, w, http.StatusOK)
		if body := bytes.TrimSpace(w.Body.Bytes()); string(body) != "[]" {
			t.Errorf("Expected [], got %s", body)
		}
	})

	older := testutil.CreateTestPoll(t, env.db, 1, nil)
	time.Sleep(5 * time.Millisecond)
	newer := testutil.CreateTestPoll(t, env.db, 2, nil)
	testutil.CastTestVote(t, env.db, older.ID, older.Options[1].ID, 5)

	t.Run("newest first with has_voted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/polls", nil)
		w := env.serve(t, handler.ListPolls, req, 5)

		testutil.AssertStatus(t, w, http.StatusOK)

		var views []models.PollView
		testutil.AssertJSON(t, w, &views)

		if len(views) != 2 {
			t.Fatalf("Expected 2 polls, got %d", len(views))
		}
		if views[0].ID != newer.ID || views[1].ID != older.ID {
			t.Errorf("Expected newest first, got %s then %s", views[0].ID, views[1].ID)
		}
		if views[0].HasVoted {
			t.Error("Expected has_voted false on newer poll")
		}
		if !views[1].HasVoted {
			t.Error("Expected has_voted true on older poll")
		}
		if views[1].Options[1].Percentage != 100 {
			t.Errorf("Expected 100%% for the only voted option, got %d", views[1].Options[1].Percentage)
		}
	})

	t.Run("requires token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/polls", nil)
		w := env.serve(t, handler.ListPolls, req, 0)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}
