// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/danielhkuo/quickly-vote/models"
)

// Store is the persistence the engine needs. *store.Store implements it.
type Store interface {
	CreatePoll(ctx context.Context, question string, optionTexts []string, createdBy models.UserID, createdAt time.Time, expiresAt *time.Time) (models.Poll, error)
	GetPoll(ctx context.Context, pollID string) (models.Poll, error)
	ListPolls(ctx context.Context) ([]models.Poll, error)
	RecordVote(ctx context.Context, pollID, optionID string, userID models.UserID, createdAt time.Time) (models.Vote, error)
	VotesForUser(ctx context.Context, userID models.UserID, pollIDs []string) (map[string]bool, error)
	Tally(ctx context.Context, pollID string) ([]models.OptionCount, error)
	TallyPolls(ctx context.Context, pollIDs []string) (map[string][]models.OptionCount, error)
}

// Service creates polls, casts votes and builds tallied views.
type Service struct {
	store Store
	now   func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePoll trims the question and options, drops blank options and
// stores the poll atomically. Any expiry is accepted, including one in the
// past. Duplicate option text is allowed.
func (s *Service) CreatePoll(ctx context.Context, question string, options []string, expiresAt *time.Time, requester models.UserID) (models.Poll, error) {
	if requester == 0 {
		return models.Poll{}, models.ErrUnauthenticated
	}

	question = strings.TrimSpace(question)
	if question == "" {
		return models.Poll{}, fmt.Errorf("%w: question is required", models.ErrValidation)
	}

	texts := lo.FilterMap(options, func(opt string, _ int) (string, bool) {
		opt = strings.TrimSpace(opt)
		return opt, opt != ""
	})
	if len(texts) < 2 {
		return models.Poll{}, fmt.Errorf("%w: at least 2 non-empty options are required", models.ErrValidation)
	}

	poll, err := s.store.CreatePoll(ctx, question, texts, requester, s.now(), expiresAt)
	if err != nil {
		return models.Poll{}, err
	}

	slog.Info("poll created", "poll_id", poll.ID, "created_by", requester, "options", len(poll.Options))
	return poll, nil
}
