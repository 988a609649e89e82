// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

  - AuthHandler: Signup and login, backed by the store and a TokenIssuer
  - PollHandler: Create, list and view polls
  - VotingHandler: Cast a vote

Poll and voting handlers wrap a *polls.Service:

	svc := polls.NewService(store.New(db, cfg.QueryTimeout))
	pollHandler := handlers.NewPollHandler(svc)

They read the caller from middleware.UserIDFromContext, so they are
mounted behind middleware.RequireAuth.

# Error Mapping

Service errors map to statuses by kind:

	ErrValidation      → 400
	ErrUnauthenticated → 401
	ErrNotFound        → 404
	ErrExpired         → 409
	ErrAlreadyVoted    → 409
	anything else      → 500 (logged, details not returned)

# Voting Flow

	POST /api/polls/{id}/vote {"option_id": "..."}

returns 201 with the vote id and the poll view read after the vote.
*/
package handlers
