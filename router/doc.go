// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Identity (public):

	POST /api/auth/signup - Create account, returns user and token
	POST /api/auth/login  - Exchange credentials for a token

Polls (require Authorization: Bearer <token>):

	POST /api/polls           - Create poll
	GET  /api/polls           - All polls, newest first, with tallies
	GET  /api/polls/{id}      - One poll with tally and has_voted
	POST /api/polls/{id}/vote - Cast the caller's single vote

# Handler Initialization

The router builds one store, poll service and token issuer and shares
them between handlers:

	st := store.New(db, cfg.QueryTimeout)
	svc := polls.NewService(st)
	pollHandler := handlers.NewPollHandler(svc)
*/
package router
