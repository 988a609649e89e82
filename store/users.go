// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-vote/models"
)

// CreateUser registers an account. Emails are unique.
func (s *Store) CreateUser(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user := models.User{Name: name, Email: email}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO app_user (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`, name, email, passwordHash).Scan(&user.ID)
	if isUniqueViolation(err) {
		return models.User{}, ErrEmailTaken
	}
	if err != nil {
		return models.User{}, storageErr("insert user", err)
	}

	return user, nil
}

// GetUserByEmail returns the account and its password hash.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var user models.User
	var hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash
		FROM app_user
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", fmt.Errorf("%w: user %s", models.ErrNotFound, email)
	}
	if err != nil {
		return models.User{}, "", storageErr("query user", err)
	}

	return user, hash, nil
}
