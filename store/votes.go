// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/danielhkuo/quickly-vote/models"
)

// RecordVote inserts a vote. The UNIQUE (poll_id, user_id) constraint is the
// only duplicate check: a violation is reported as models.ErrAlreadyVoted.
func (s *Store) RecordVote(ctx context.Context, pollID, optionID string, userID models.UserID, createdAt time.Time) (models.Vote, error) {
	voteID, err := newID()
	if err != nil {
		return models.Vote{}, storageErr("create vote", err)
	}

	vote := models.Vote{
		ID:        voteID,
		PollID:    pollID,
		OptionID:  optionID,
		UserID:    userID,
		CreatedAt: normalizeTime(createdAt),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO vote (id, poll_id, option_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.PollID, vote.OptionID, int64(vote.UserID), vote.CreatedAt)
	switch {
	case err == nil:
		return vote, nil
	case isUniqueViolation(err):
		return models.Vote{}, fmt.Errorf("%w: poll %s", models.ErrAlreadyVoted, pollID)
	case isForeignKeyViolation(err):
		return models.Vote{}, fmt.Errorf("%w: option %s is not part of poll %s", models.ErrValidation, optionID, pollID)
	default:
		return models.Vote{}, storageErr("insert vote", err)
	}
}

// VotesForUser reports which of pollIDs userID has voted in, using a single
// query for the whole set. The query is keyed on the user alone, so the
// size of pollIDs never reaches the driver's parameter limit.
func (s *Store) VotesForUser(ctx context.Context, userID models.UserID, pollIDs []string) (map[string]bool, error) {
	voted := make(map[string]bool)
	if len(pollIDs) == 0 {
		return voted, nil
	}
	wanted := lo.Associate(pollIDs, func(id string) (string, bool) { return id, true })

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT poll_id FROM vote
		WHERE user_id = $1
	`, int64(userID))
	if err != nil {
		return nil, storageErr("query user votes", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pollID string
		if err := rows.Scan(&pollID); err != nil {
			return nil, storageErr("scan user vote", err)
		}
		if wanted[pollID] {
			voted[pollID] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate user votes", err)
	}

	return voted, nil
}

// Tally returns the vote count of every option of pollID in creation order,
// including options with no votes.
func (s *Store) Tally(ctx context.Context, pollID string) ([]models.OptionCount, error) {
	tallies, err := s.TallyPolls(ctx, []string{pollID})
	if err != nil {
		return nil, err
	}
	return tallies[pollID], nil
}

// maxListParams bounds the poll ids bound as query parameters. Larger sets
// are tallied over every option and filtered here, still in one query.
const maxListParams = 1000

// TallyPolls aggregates vote rows for several polls in one query, keyed by
// poll id. Counts are always derived from the vote table.
func (s *Store) TallyPolls(ctx context.Context, pollIDs []string) (map[string][]models.OptionCount, error) {
	tallies := make(map[string][]models.OptionCount, len(pollIDs))
	if len(pollIDs) == 0 {
		return tallies, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		rows   *sql.Rows
		err    error
		wanted map[string]bool
	)
	if len(pollIDs) <= maxListParams {
		rows, err = s.db.QueryContext(ctx, `
			SELECT o.poll_id, o.id, o.text, COUNT(v.id)
			FROM option o
			LEFT JOIN vote v ON v.option_id = o.id
			WHERE o.poll_id IN (`+placeholders(1, len(pollIDs))+`)
			GROUP BY o.poll_id, o.id, o.text, o.position
			ORDER BY o.poll_id, o.position
		`, lo.ToAnySlice(pollIDs)...)
	} else {
		wanted = lo.Associate(pollIDs, func(id string) (string, bool) { return id, true })
		rows, err = s.db.QueryContext(ctx, `
			SELECT o.poll_id, o.id, o.text, COUNT(v.id)
			FROM option o
			JOIN poll p ON p.id = o.poll_id
			LEFT JOIN vote v ON v.option_id = o.id
			GROUP BY o.poll_id, o.id, o.text, o.position
			ORDER BY o.poll_id, o.position
		`)
	}
	if err != nil {
		return nil, storageErr("query tally", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pollID string
		var count models.OptionCount
		if err := rows.Scan(&pollID, &count.OptionID, &count.Text, &count.Votes); err != nil {
			return nil, storageErr("scan tally", err)
		}
		if wanted != nil && !wanted[pollID] {
			continue
		}
		tallies[pollID] = append(tallies[pollID], count)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate tally", err)
	}

	return tallies, nil
}
