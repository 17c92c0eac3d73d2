package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultSkillColor is stored for every new skill
const DefaultSkillColor = "primary"

// Placeholder profile statistics. These are not derived from stored data.
const (
	PlaceholderMembership        = "Pro Member"
	PlaceholderProfilePic        = "https://i.pravatar.cc/150?img=65"
	PlaceholderReadiness         = 82
	PlaceholderSessionsCompleted = 14
	PlaceholderImprovementRate   = "+18%"
)

// Request types

type AIRequest struct {
	Text   string  `json:"text"`
	UserID UserRef `json:"user_id,omitempty"`
}

// UserRef is a user id that clients may send as a JSON string or number
type UserRef string

func (u *UserRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*u = UserRef(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user_id must be a string or number: %s", data)
	}
	*u = UserRef(n.String())
	return nil
}

// Response types

type AddSkillResponse struct {
	Status  string `json:"status"`
	SkillID string `json:"skill_id"`
}

type AIResponse struct {
	Response string `json:"response"`
}

type AnalyticsResponse struct {
	TotalUsers   int `json:"total_users"`
	QueriesToday int `json:"queries_today"`
	TotalQueries int `json:"total_queries"`
}

// ProfileStats are display-only figures shown next to real profile data
type ProfileStats struct {
	Membership        string `json:"membership"`
	ProfilePic        string `json:"profilePic"`
	Readiness         int    `json:"readiness"`
	SessionsCompleted int    `json:"sessionsCompleted"`
	ImprovementRate   string `json:"improvementRate"`
}

type UserInfoResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	ProfileStats
	Skills []Skill `json:"skills"`
}

// Domain types

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never expose in JSON
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Skill struct {
	ID      string `db:"id" json:"id"`
	UserID  string `db:"user_id" json:"-"`
	Name    string `db:"name" json:"name"`
	Percent int    `db:"percent" json:"percent"`
	Color   string `db:"color" json:"color"`
	Note    string `db:"note" json:"note"`
}

type AIQuery struct {
	ID        string    `db:"id" json:"id"`
	UserID    *string   `db:"user_id" json:"user_id,omitempty"`
	Query     string    `db:"query" json:"query"`
	Response  string    `db:"response" json:"response"`
	CreatedAt time.Time `db:"created_at" json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
