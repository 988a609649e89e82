// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
)

// writeServiceError maps an engine error kind to its HTTP status.
// Storage details are logged, never sent to the client.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, detail(err, models.ErrValidation))
	case errors.Is(err, models.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	case errors.Is(err, models.ErrExpired):
		middleware.ErrorResponse(w, http.StatusConflict, "Poll has expired")
	case errors.Is(err, models.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, "You have already voted in this poll")
	case errors.Is(err, models.ErrUnauthenticated):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
	default:
		slog.Error(op+" failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// detail strips the kind prefix from a wrapped error message.
func detail(err, kind error) string {
	msg := strings.TrimPrefix(err.Error(), kind.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return kind.Error()
	}
	return msg
}
