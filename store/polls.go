// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-vote/models"
)

// CreatePoll inserts a poll and all of its options in one transaction, so
// the poll is never visible with a partial option set. Options keep the
// given order.
func (s *Store) CreatePoll(ctx context.Context, question string, optionTexts []string, createdBy models.UserID, createdAt time.Time, expiresAt *time.Time) (models.Poll, error) {
	if strings.TrimSpace(question) == "" {
		return models.Poll{}, fmt.Errorf("%w: question is required", models.ErrValidation)
	}
	if len(optionTexts) < 2 {
		return models.Poll{}, fmt.Errorf("%w: at least 2 options are required", models.ErrValidation)
	}
	for _, text := range optionTexts {
		if strings.TrimSpace(text) == "" {
			return models.Poll{}, fmt.Errorf("%w: options must not be empty", models.ErrValidation)
		}
	}

	pollID, err := newID()
	if err != nil {
		return models.Poll{}, storageErr("create poll", err)
	}

	poll := models.Poll{
		ID:        pollID,
		Question:  question,
		CreatedBy: createdBy,
		CreatedAt: normalizeTime(createdAt),
		Options:   make([]models.Option, 0, len(optionTexts)),
	}
	if expiresAt != nil {
		exp := normalizeTime(*expiresAt)
		poll.ExpiresAt = &exp
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Poll{}, storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, question, created_by, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`, poll.ID, poll.Question, int64(poll.CreatedBy), poll.CreatedAt, poll.ExpiresAt)
	if err != nil {
		return models.Poll{}, storageErr("insert poll", err)
	}

	for i, text := range optionTexts {
		optionID, err := newID()
		if err != nil {
			return models.Poll{}, storageErr("create option", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO option (id, poll_id, position, text)
			VALUES ($1, $2, $3, $4)
		`, optionID, poll.ID, i, text)
		if err != nil {
			return models.Poll{}, storageErr("insert option", err)
		}

		poll.Options = append(poll.Options, models.Option{ID: optionID, PollID: poll.ID, Text: text})
	}

	if err := tx.Commit(); err != nil {
		return models.Poll{}, storageErr("commit poll", err)
	}

	return poll, nil
}

// GetPoll loads a poll and its options in creation order.
func (s *Store) GetPoll(ctx context.Context, pollID string) (models.Poll, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var poll models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question, created_by, created_at, expires_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Question, &poll.CreatedBy, &poll.CreatedAt, &poll.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, fmt.Errorf("%w: poll %s", models.ErrNotFound, pollID)
	}
	if err != nil {
		return models.Poll{}, storageErr("query poll", err)
	}
	normalizePoll(&poll)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, text
		FROM option
		WHERE poll_id = $1
		ORDER BY position
	`, pollID)
	if err != nil {
		return models.Poll{}, storageErr("query options", err)
	}
	defer rows.Close()

	poll.Options = []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text); err != nil {
			return models.Poll{}, storageErr("scan option", err)
		}
		poll.Options = append(poll.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return models.Poll{}, storageErr("iterate options", err)
	}

	return poll, nil
}

// ListPolls returns every poll, most recent first, ties broken by id
// descending. Options are not loaded; TallyPolls returns them with counts.
func (s *Store) ListPolls(ctx context.Context) ([]models.Poll, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, created_by, created_at, expires_at
		FROM poll
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, storageErr("query polls", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		if err := rows.Scan(&poll.ID, &poll.Question, &poll.CreatedBy, &poll.CreatedAt, &poll.ExpiresAt); err != nil {
			return nil, storageErr("scan poll", err)
		}
		normalizePoll(&poll)
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate polls", err)
	}

	return polls, nil
}

func normalizePoll(poll *models.Poll) {
	poll.CreatedAt = poll.CreatedAt.UTC()
	if poll.ExpiresAt != nil {
		exp := poll.ExpiresAt.UTC()
		poll.ExpiresAt = &exp
	}
}
