// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quickly-vote API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// Without a body or token every route still reaches its handler
	testCases := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/", http.StatusOK},

		{"POST", "/api/auth/signup", http.StatusBadRequest},
		{"POST", "/api/auth/login", http.StatusBadRequest},

		{"POST", "/api/polls", http.StatusUnauthorized},
		{"GET", "/api/polls", http.StatusUnauthorized},
		{"GET", "/api/polls/test-id", http.StatusUnauthorized},
		{"POST", "/api/polls/test-id/vote", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Route %s %s returned %d, expected %d", tc.method, tc.path, w.Code, tc.expectedStatus)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},                // Only GET is defined
		{"DELETE", "/api/polls/test-id"},   // Votes and polls are never deleted
		{"PUT", "/api/polls/test-id/vote"}, // Votes cannot be changed
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	poll := testutil.CreateTestPoll(t, db, 1, nil)

	mux := NewRouter(db, cfg)

	t.Run("poll ID extraction", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/polls/"+poll.ID, nil, testutil.AuthHeader(t, cfg, 1))
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var view models.PollView
		testutil.AssertJSON(t, w, &view)
		if view.ID != poll.ID {
			t.Errorf("Expected poll %s, got %s", poll.ID, view.ID)
		}
	})

	t.Run("vote path", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/polls/"+poll.ID+"/vote",
			models.VoteRequest{OptionID: poll.Options[0].ID}, testutil.AuthHeader(t, cfg, 2))
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)
		if n := testutil.CountVotes(t, db, poll.ID, 2); n != 1 {
			t.Errorf("Expected 1 vote for user 2, got %d", n)
		}
	})
}

func TestSignupThenVote(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := testutil.MakeRequest("POST", "/api/auth/signup", models.SignupRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "correct-horse",
	}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var signup models.AuthResponse
	testutil.AssertJSON(t, w, &signup)
	headers := map[string]string{"Authorization": "Bearer " + signup.Token}

	req = testutil.MakeRequest("POST", "/api/polls", models.CreatePollRequest{
		Question: "Tabs or spaces?",
		Options:  []string{"Tabs", "Spaces"},
	}, headers)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var poll models.Poll
	testutil.AssertJSON(t, w, &poll)
	if poll.CreatedBy != signup.User.ID {
		t.Errorf("Expected created_by %d, got %d", signup.User.ID, poll.CreatedBy)
	}

	req = testutil.MakeRequest("POST", "/api/polls/"+poll.ID+"/vote",
		models.VoteRequest{OptionID: poll.Options[0].ID}, headers)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	req = testutil.MakeRequest("GET", "/api/polls", nil, headers)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var views []models.PollView
	testutil.AssertJSON(t, w, &views)
	if len(views) != 1 || !views[0].HasVoted || views[0].Options[0].Percentage != 100 {
		t.Errorf("Expected one voted poll at 100%%, got %+v", views)
	}
}
