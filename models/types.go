package models

import (
	"encoding/json"
	"time"
)

// UserID identifies an authenticated user. It is issued by the identity
// layer and treated as opaque by the poll engine. The zero value means no
// identity was established.
type UserID int64

// Request types

type SignupRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreatePollRequest struct {
	Question  string     `json:"question" validate:"required"`
	Options   []string   `json:"options" validate:"required,min=2"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// UnmarshalJSON also accepts the camelCase "expiresAt" key sent by the
// web client.
func (r *CreatePollRequest) UnmarshalJSON(data []byte) error {
	type plain CreatePollRequest
	var aux struct {
		plain
		ExpiresAtCamel *time.Time `json:"expiresAt"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = CreatePollRequest(aux.plain)
	if r.ExpiresAt == nil {
		r.ExpiresAt = aux.ExpiresAtCamel
	}
	return nil
}

type VoteRequest struct {
	OptionID string `json:"option_id" validate:"required"`
}

// UnmarshalJSON also accepts the camelCase "optionId" key.
func (r *VoteRequest) UnmarshalJSON(data []byte) error {
	type plain VoteRequest
	var aux struct {
		plain
		OptionIDCamel string `json:"optionId"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = VoteRequest(aux.plain)
	if r.OptionID == "" {
		r.OptionID = aux.OptionIDCamel
	}
	return nil
}

// Response types

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type VoteResponse struct {
	VoteID  string    `json:"vote_id"`
	Message string    `json:"message"`
	Poll    *PollView `json:"poll,omitempty"`
}

// Domain types

type User struct {
	ID    UserID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Poll struct {
	ID        string     `json:"id"`
	Question  string     `json:"question"`
	CreatedBy UserID     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Options   []Option   `json:"options"`
}

// IsExpired reports whether the poll no longer accepts votes at now.
// A poll without an expiry never expires.
func (p Poll) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && !now.Before(*p.ExpiresAt)
}

// HasOption reports whether optionID belongs to the poll.
func (p Poll) HasOption(optionID string) bool {
	for _, opt := range p.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

type Option struct {
	ID     string `json:"id"`
	PollID string `json:"poll_id"`
	Text   string `json:"text"`
}

type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	OptionID  string    `json:"option_id"`
	UserID    UserID    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

// OptionCount is one row of a poll tally, in option creation order.
type OptionCount struct {
	OptionID string
	Text     string
	Votes    int
}

// View types

type OptionView struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type PollView struct {
	ID         string       `json:"id"`
	Question   string       `json:"question"`
	CreatedBy  UserID       `json:"created_by"`
	CreatedAt  time.Time    `json:"created_at"`
	ExpiresAt  *time.Time   `json:"expires_at,omitempty"`
	IsExpired  bool         `json:"is_expired"`
	HasVoted   bool         `json:"has_voted"`
	TotalVotes int          `json:"total_votes"`
	Options    []OptionView `json:"options"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
