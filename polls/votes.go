// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/quickly-vote/models"
)

// CastVote records userID's vote for optionID in pollID.
//
// Checks run in a fixed order and the first failure is returned:
// the poll exists (ErrNotFound), it has not expired (ErrExpired), the option
// belongs to it (ErrValidation), and the user has not voted yet
// (ErrAlreadyVoted). The last check is the store's uniqueness constraint,
// so concurrent attempts by one user record exactly one vote.
func (s *Service) CastVote(ctx context.Context, pollID, optionID string, userID models.UserID) (models.Vote, error) {
	if userID == 0 {
		return models.Vote{}, models.ErrUnauthenticated
	}
	now := s.now()

	poll, err := s.store.GetPoll(ctx, pollID)
	if err != nil {
		return models.Vote{}, err
	}

	if poll.IsExpired(now) {
		return models.Vote{}, fmt.Errorf("%w: poll %s closed at %s", models.ErrExpired, poll.ID, poll.ExpiresAt.Format(time.RFC3339))
	}

	if !poll.HasOption(optionID) {
		return models.Vote{}, fmt.Errorf("%w: option %s is not part of poll %s", models.ErrValidation, optionID, poll.ID)
	}

	vote, err := s.store.RecordVote(ctx, poll.ID, optionID, userID, now)
	if err != nil {
		return models.Vote{}, err
	}

	slog.Info("vote recorded", "poll_id", poll.ID, "vote_id", vote.ID)
	return vote, nil
}
