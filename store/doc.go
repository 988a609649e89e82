// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the durable poll store on top of database/sql.

	s := store.New(conn, cfg.QueryTimeout)

# Polls

CreatePoll writes the poll row and every option row in a single
transaction. GetPoll loads a poll with its options; ListPolls returns poll
rows ordered by created_at then id, both descending.

# Votes

RecordVote is a plain INSERT. Duplicate votes are rejected by the
UNIQUE (poll_id, user_id) constraint and reported as models.ErrAlreadyVoted;
there is no read-before-write.

# Tallies

Tally and TallyPolls count vote rows per option with a LEFT JOIN so that
options without votes report zero. VotesForUser answers "has voted" for a
whole list of polls in one query.

# Errors

Every driver failure is wrapped with models.ErrStorage. Each call is bounded
by the store timeout; nothing is retried.
*/
package store
