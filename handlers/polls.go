// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/polls"
)

type PollHandler struct {
	svc *polls.Service
}

func NewPollHandler(svc *polls.Service) *PollHandler {
	return &PollHandler{svc: svc}
}

// CreatePoll handles POST /api/polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	poll, err := h.svc.CreatePoll(r.Context(), req.Question, req.Options, req.ExpiresAt, middleware.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err, "create poll")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// ListPolls handles GET /api/polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ViewPollList(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err, "list polls")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetPoll handles GET /api/polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	view, err := h.svc.ViewPoll(r.Context(), pollID, middleware.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, err, "get poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, view)
}
