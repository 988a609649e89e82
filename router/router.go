// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/polls"
	"github.com/danielhkuo/quickly-vote/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db, cfg.QueryTimeout)
	svc := polls.NewService(st)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, issuer)
	pollHandler := handlers.NewPollHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Identity (public)
	mux.HandleFunc("POST /api/auth/signup", middleware.WithLogging(authHandler.Signup))
	mux.HandleFunc("POST /api/auth/login", middleware.WithLogging(authHandler.Login))

	// Polls (authenticated)
	mux.HandleFunc("POST /api/polls", middleware.WithLogging(middleware.RequireAuth(issuer, pollHandler.CreatePoll)))
	mux.HandleFunc("GET /api/polls", middleware.WithLogging(middleware.RequireAuth(issuer, pollHandler.ListPolls)))
	mux.HandleFunc("GET /api/polls/{id}", middleware.WithLogging(middleware.RequireAuth(issuer, pollHandler.GetPoll)))
	mux.HandleFunc("POST /api/polls/{id}/vote", middleware.WithLogging(middleware.RequireAuth(issuer, votingHandler.Vote)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
