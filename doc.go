// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote is a single-choice polling service: signed-in users create
polls with an optional expiry, cast at most one vote per poll, and see live
tallies with rounded percentages.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=./quickly-vote.db JWT_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -jwt-secret ...

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - JWT_SECRET (-jwt-secret): HMAC secret for identity tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL (-token-ttl): Token lifetime (default: 168h)
  - QUERY_TIMEOUT (-query-timeout): Per-query deadline (default: 5s)

# Architecture

  - polls: Poll lifecycle, vote engine and tally views
  - store: SQL persistence shared by SQLite and PostgreSQL
  - handlers: HTTP request handlers (auth, polls, voting)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Auth, CORS, logging, JSON helpers
  - models: Request/response/domain types and error kinds
  - auth: JWT tokens and password hashing
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
