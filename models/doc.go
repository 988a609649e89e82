// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignupRequest: name, email, password
  - LoginRequest: email, password
  - CreatePollRequest: question, options, expires_at (optional)
  - VoteRequest: option_id

Validation tags are enforced by middleware.DecodeAndValidate.

# Response Types

  - AuthResponse: user, token
  - VoteResponse: vote_id, message, refreshed poll view
  - ErrorResponse: error, message

# Domain Types

  - Poll: question, creator, expiry and its fixed option set
  - Option: one choice within a poll
  - Vote: a user's single choice in a poll (user id never serialized)
  - OptionCount: a tally row
  - PollView, OptionView: tallied, requester-specific read models

# Error Kinds

Sentinel errors matched with errors.Is:

	ErrValidation      malformed input
	ErrNotFound        poll or record missing
	ErrExpired         poll past its expiry
	ErrAlreadyVoted    (poll, user) uniqueness violated
	ErrUnauthenticated no user identity
	ErrStorage         database failure or timeout
*/
package models
