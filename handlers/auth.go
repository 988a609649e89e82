// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
)

type AuthHandler struct {
	store  *store.Store
	issuer *auth.TokenIssuer
}

func NewAuthHandler(st *store.Store, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{store: st, issuer: issuer}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	user, err := h.store.CreateUser(r.Context(), strings.TrimSpace(req.Name), normalizeEmail(req.Email), hash)
	if errors.Is(err, store.ErrEmailTaken) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email already in use")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	slog.Info("user signed up", "user_id", user.ID)
	h.respondWithToken(w, http.StatusCreated, user)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, hash, err := h.store.GetUserByEmail(r.Context(), normalizeEmail(req.Email))
	if errors.Is(err, models.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(hash, req.Password); err != nil {
		slog.Warn("login rejected", "user_id", user.ID, "client_ip", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user models.User) {
	token, err := h.issuer.Issue(user)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Error issuing token")
		return
	}

	middleware.JSONResponse(w, status, models.AuthResponse{User: user, Token: token})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
