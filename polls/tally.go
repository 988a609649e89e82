// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/danielhkuo/quickly-vote/models"
)

// ViewPoll returns pollID with per-option counts and percentages, its expiry
// state and whether requester has voted in it.
func (s *Service) ViewPoll(ctx context.Context, pollID string, requester models.UserID) (models.PollView, error) {
	if requester == 0 {
		return models.PollView{}, models.ErrUnauthenticated
	}
	now := s.now()

	poll, err := s.store.GetPoll(ctx, pollID)
	if err != nil {
		return models.PollView{}, err
	}

	counts, err := s.store.Tally(ctx, poll.ID)
	if err != nil {
		return models.PollView{}, err
	}

	voted, err := s.store.VotesForUser(ctx, requester, []string{poll.ID})
	if err != nil {
		return models.PollView{}, err
	}

	return buildView(poll, counts, voted[poll.ID], now), nil
}

// ViewPollList returns every poll, most recent first, tallied for
// requester. The has-voted lookup and the tally are one batched store call
// each, independent of the number of polls.
func (s *Service) ViewPollList(ctx context.Context, requester models.UserID) ([]models.PollView, error) {
	if requester == 0 {
		return nil, models.ErrUnauthenticated
	}
	now := s.now()

	polls, err := s.store.ListPolls(ctx)
	if err != nil {
		return nil, err
	}
	if len(polls) == 0 {
		return []models.PollView{}, nil
	}

	ids := lo.Map(polls, func(p models.Poll, _ int) string { return p.ID })

	voted, err := s.store.VotesForUser(ctx, requester, ids)
	if err != nil {
		return nil, err
	}

	tallies, err := s.store.TallyPolls(ctx, ids)
	if err != nil {
		return nil, err
	}

	return lo.Map(polls, func(p models.Poll, _ int) models.PollView {
		return buildView(p, tallies[p.ID], voted[p.ID], now)
	}), nil
}

func buildView(poll models.Poll, counts []models.OptionCount, hasVoted bool, now time.Time) models.PollView {
	total := lo.SumBy(counts, func(c models.OptionCount) int { return c.Votes })

	return models.PollView{
		ID:         poll.ID,
		Question:   poll.Question,
		CreatedBy:  poll.CreatedBy,
		CreatedAt:  poll.CreatedAt,
		ExpiresAt:  poll.ExpiresAt,
		IsExpired:  poll.IsExpired(now),
		HasVoted:   hasVoted,
		TotalVotes: total,
		Options: lo.Map(counts, func(c models.OptionCount, _ int) models.OptionView {
			return models.OptionView{
				ID:         c.OptionID,
				Text:       c.Text,
				Votes:      c.Votes,
				Percentage: Percentage(c.Votes, total),
			}
		}),
	}
}

// Percentage returns round(100*votes/total), or 0 when there are no votes.
func Percentage(votes, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(votes) / float64(total)))
}
