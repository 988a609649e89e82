// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/polls"
)

type VotingHandler struct {
	svc *polls.Service
}

func NewVotingHandler(svc *polls.Service) *VotingHandler {
	return &VotingHandler{svc: svc}
}

// Vote handles POST /api/polls/{id}/vote
//
// The response carries the poll view read after the vote, so the caller
// sees its own vote in the counts.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll id is required")
		return
	}

	var req models.VoteRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	vote, err := h.svc.CastVote(r.Context(), pollID, req.OptionID, userID)
	if err != nil {
		writeServiceError(w, err, "cast vote")
		return
	}

	resp := models.VoteResponse{VoteID: vote.ID, Message: "Vote recorded"}

	// The vote is committed; a failed refresh only drops the view
	view, err := h.svc.ViewPoll(r.Context(), pollID, userID)
	if err != nil {
		slog.Warn("failed to refresh poll after vote", "poll_id", pollID, "error", err)
	} else {
		resp.Poll = &view
	}

	middleware.JSONResponse(w, http.StatusCreated, resp)
}
