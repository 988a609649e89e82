// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls implements the poll lifecycle, the vote engine and the tally
views on top of a Store.

	svc := polls.NewService(store.New(conn, cfg.QueryTimeout))

# Creating Polls

CreatePoll trims the question and options and needs a non-empty question
plus at least two non-empty options. Expiry is optional and not validated.

# Voting

CastVote checks, in order: poll exists, poll not expired, option belongs to
poll, user has not voted. The last check is the store's UNIQUE constraint.

# Views

ViewPoll and ViewPollList derive counts from vote rows on every call:

	percentage = round(100 * votes / total), 0 when total is 0

Each operation reads the clock once, so every expiry decision within it
uses the same instant.

# Errors

All failures are one of the models error kinds; nothing is retried.
*/
package polls
